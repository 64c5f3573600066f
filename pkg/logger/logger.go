package logger

import (
    "sync"

    "go.uber.org/zap"
    "go.uber.org/zap/zapcore"
)

var (
    mu  sync.RWMutex
    log = zap.NewNop()
)

// Init 按配置等级初始化全局 logger（production JSON 编码）
func Init(level string) error {
    lvl, err := zapcore.ParseLevel(level)
    if err != nil {
        lvl = zapcore.InfoLevel
    }
    cfg := zap.NewProductionConfig()
    cfg.Level = zap.NewAtomicLevelAt(lvl)
    l, err := cfg.Build(zap.AddCallerSkip(1))
    if err != nil {
        return err
    }
    mu.Lock()
    log = l
    mu.Unlock()
    return nil
}

// L 取当前全局 logger
func L() *zap.Logger {
    mu.RLock()
    defer mu.RUnlock()
    return log
}

func Debug(msg string, fields ...zap.Field) { L().Debug(msg, fields...) }
func Info(msg string, fields ...zap.Field)  { L().Info(msg, fields...) }
func Warn(msg string, fields ...zap.Field)  { L().Warn(msg, fields...) }
func Error(msg string, fields ...zap.Field) { L().Error(msg, fields...) }
func Fatal(msg string, fields ...zap.Field) { L().Fatal(msg, fields...) }

func Sync() { _ = L().Sync() }

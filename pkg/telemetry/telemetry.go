package telemetry

import (
    "context"
    "time"

    "github.com/getsentry/sentry-go"
    "go.opentelemetry.io/otel"
    "go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
    "go.opentelemetry.io/otel/sdk/resource"
    sdktrace "go.opentelemetry.io/otel/sdk/trace"
    semconv "go.opentelemetry.io/otel/semconv/v1.24.0"

    "github.com/d60-Lab/microblog/config"
)

// InitTracing 初始化 OTLP tracer provider，返回关闭函数。
// 未启用时返回 no-op 关闭函数。
func InitTracing(ctx context.Context, cfg *config.Config) (func(context.Context) error, error) {
    if !cfg.Telemetry.TracingEnabled {
        return func(context.Context) error { return nil }, nil
    }
    exporter, err := otlptracehttp.New(ctx,
        otlptracehttp.WithEndpoint(cfg.Telemetry.OTLPEndpoint),
        otlptracehttp.WithInsecure(),
    )
    if err != nil {
        return nil, err
    }
    res, err := resource.New(ctx,
        resource.WithAttributes(semconv.ServiceName(cfg.Telemetry.ServiceName)),
    )
    if err != nil {
        return nil, err
    }
    tp := sdktrace.NewTracerProvider(
        sdktrace.WithBatcher(exporter),
        sdktrace.WithResource(res),
    )
    otel.SetTracerProvider(tp)
    return tp.Shutdown, nil
}

// InitSentry 初始化 Sentry；DSN 为空时跳过。
func InitSentry(cfg *config.Config) error {
    if cfg.Telemetry.SentryDSN == "" {
        return nil
    }
    return sentry.Init(sentry.ClientOptions{
        Dsn:        cfg.Telemetry.SentryDSN,
        ServerName: cfg.Telemetry.ServiceName,
    })
}

// FlushSentry 退出前冲刷未上报事件
func FlushSentry() {
    sentry.Flush(2 * time.Second)
}

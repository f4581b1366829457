// Package zap adapts a *zap.Logger to utf8codec.Logger.
package zap

import (
	"go.uber.org/zap"

	"github.com/unkn0wn-root/utf8codec"
)

var _ utf8codec.Logger = ZapLogger{}

type ZapLogger struct{ L *zap.Logger }

func (z ZapLogger) Debug(msg string, f utf8codec.Fields) { z.L.Debug(msg, zf(f)...) }
func (z ZapLogger) Info(msg string, f utf8codec.Fields)  { z.L.Info(msg, zf(f)...) }
func (z ZapLogger) Warn(msg string, f utf8codec.Fields)  { z.L.Warn(msg, zf(f)...) }
func (z ZapLogger) Error(msg string, f utf8codec.Fields) { z.L.Error(msg, zf(f)...) }

func zf(f utf8codec.Fields) []zap.Field {
	if len(f) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(f))
	for k, v := range f {
		out = append(out, zap.Any(k, v))
	}
	return out
}

// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type Restaurant struct {
	ID   int64
	Name string
}

func TestGormTracingPlugin(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	// DryRun 只生成 SQL，不需要真的连上数据库
	db, err := gorm.Open(mysql.New(mysql.Config{
		DSN:                       "root:root@tcp(localhost:13316)/tastebook",
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.Use(NewGormTracingPluginWithProvider(tp)))

	ctx, parent := tp.Tracer("test").Start(context.Background(), "handler")
	var r Restaurant
	db.WithContext(ctx).Where("id = ?", 1).First(&r)
	db.WithContext(ctx).Create(&Restaurant{Name: "老王牛肉面"})
	parent.End()

	spans := recorder.Ended()
	require.Len(t, spans, 3)
	assert.Equal(t, "restaurants SELECT", spans[0].Name())
	assert.Equal(t, trace.SpanKindClient, spans[0].SpanKind())
	assert.Equal(t, parent.SpanContext().TraceID(), spans[0].SpanContext().TraceID())
	assert.Contains(t, spans[0].Attributes(), attribute.String("db.sql.table", "restaurants"))
	assert.Contains(t, spans[0].Attributes(), attribute.String("db.operation", "SELECT"))
	assert.Equal(t, "restaurants INSERT", spans[1].Name())
}

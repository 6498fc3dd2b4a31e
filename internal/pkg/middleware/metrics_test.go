package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsBuilder(t *testing.T) {
	gin.SetMode(gin.TestMode)
	builder := NewMetricsBuilder("tastebook", prometheus.NewRegistry())
	server := gin.New()
	server.Use(builder.Build())
	server.POST("/review/detail", func(ctx *gin.Context) {
		ctx.Status(http.StatusOK)
	})
	for i := 0; i < 3; i++ {
		server.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/review/detail", nil))
	}
	server.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/not/found", nil))

	assert.Equal(t, float64(3), testutil.ToFloat64(builder.counterVec.WithLabelValues(http.MethodPost, "/review/detail", "200")))
	// 没有匹配到路由的使用原始路径
	assert.Equal(t, float64(1), testutil.ToFloat64(builder.counterVec.WithLabelValues(http.MethodPost, "/not/found", "404")))
}

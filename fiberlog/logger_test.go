package fiberlog

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func TestRequestLatencyIsolation(t *testing.T) {
	logger, hook := logrustest.NewNullLogger()

	app := fiber.New()
	app.Use(New(Config{
		Logger: logger,
		Tags:   []string{TagLatency, TagPath, TagStatus},
	}))
	const slowDelay = 80 * time.Millisecond
	app.Get("/slow", func(c *fiber.Ctx) error {
		time.Sleep(slowDelay)
		return c.SendString("ok")
	})
	app.Get("/fast", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	wg := sync.WaitGroup{}
	wg.Add(2)
	go func() {
		defer wg.Done()
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/slow", nil), 5000)
		require.Nil(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}()
	go func() {
		defer wg.Done()
		// overlaps with the slow handler
		time.Sleep(slowDelay / 4)
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/fast", nil), 5000)
		require.Nil(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}()
	wg.Wait()

	latencies := map[string]time.Duration{}
	for _, entry := range hook.AllEntries() {
		path, _ := entry.Data[TagPath].(string)
		raw, _ := entry.Data[TagLatency].(string)
		latency, err := time.ParseDuration(raw)
		require.Nil(t, err)
		latencies[path] = latency
	}
	require.Len(t, latencies, 2)
	require.GreaterOrEqual(t, latencies["/slow"], slowDelay)
	require.Less(t, latencies["/fast"], slowDelay)
}

func TestOptionsRequestsNotLogged(t *testing.T) {
	logger, hook := logrustest.NewNullLogger()

	app := fiber.New()
	app.Use(New(Config{Logger: logger, Tags: []string{TagPath}}))
	app.Options("/anything", func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusNoContent)
	})

	_, err := app.Test(httptest.NewRequest(http.MethodOptions, "/anything", nil))
	require.Nil(t, err)
	require.Empty(t, hook.AllEntries())
}

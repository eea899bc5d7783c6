package main

import (
	"expvar"
	"fmt"
	"os"
	"runtime"

	"pirelay/internal/payments"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger creates a new zap logger with color.
func NewLogger() (*zap.SugaredLogger, error) {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder

	consoleEncoder := zapcore.NewConsoleEncoder(encoderCfg)
	core := zapcore.NewCore(consoleEncoder, zapcore.AddSync(os.Stdout), zapcore.InfoLevel)

	return zap.New(core).Sugar(), nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}

// loadConfig reads the process environment. A missing PI_API_KEY is not an error here;
// each payment request answers 500 until it is set.
func loadConfig() config {
	port := getEnv("PORT", "3000")

	return config{
		addr:   ":" + port,
		env:    getEnv("ENV", "development"),
		apiURL: getEnv("EXTERNAL_URL", "localhost:"+port),
		pi: piConfig{
			apiKey:  os.Getenv("PI_API_KEY"),
			baseURL: getEnv("PI_API_URL", payments.DefaultPiAPIURL),
		},
		auth: authConfig{
			basic: basicConfig{
				user: os.Getenv("AUTH_BASIC_USER"),
				pass: os.Getenv("AUTH_BASIC_PASS"),
			},
		},
	}
}

var version = "1.0.0"

//	@title			Pi Payment Relay API
//	@description	Relays Pi Network payment approve/complete/cancel/lookup calls using the server-side API key.

//	@license.name	MIT

//	@BasePath	/

func main() {
	logger, err := NewLogger()
	if err != nil {
		fmt.Println("Error creating logger:", err)
		return
	}
	defer logger.Sync()

	if err := godotenv.Load(); err != nil {
		logger.Infow("no .env file loaded, using process environment", "error", err)
	}

	cfg := loadConfig()

	app := &application{
		config:   cfg,
		logger:   logger,
		payments: payments.NewPiAdapter(cfg.pi.apiKey, cfg.pi.baseURL),
	}

	//Metrics collected http://localhost:3000/debug/vars
	expvar.NewString("version").Set(version)
	expvar.Publish("goroutines", expvar.Func(func() any {
		return runtime.NumGoroutine()
	}))

	if cfg.pi.apiKey == "" {
		logger.Warnw("PI_API_KEY is missing, payment endpoints will answer 500", "upstream", cfg.pi.baseURL)
	} else {
		logger.Infow("PI_API_KEY configured", "upstream", cfg.pi.baseURL)
	}

	mux := app.mount()

	logger.Fatal(app.run(mux))
}

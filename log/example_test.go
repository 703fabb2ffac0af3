package log_test

import (
	"log/slog"
	"os"

	"github.com/justDeeevin/juicy-main/log"
)

func ExampleMake() {
	logger := log.Make(os.Stdout,
		log.WithLevel(log.LevelInfo),
		log.WithPretty(false),
		log.WithTimeLayout("none"),
	)

	logger.Info("generated", slog.String("output", "main_juicy.go"))
	// Output: level=INFO msg=generated output=main_juicy.go
}

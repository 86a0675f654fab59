package logging

import "go.uber.org/zap"

var logger = zap.NewNop()

// Init replaces the no-op default with a real logger. APP_ENV=production
// selects the JSON production config.
func Init(env string) error {
	var (
		l   *zap.Logger
		err error
	)
	if env == "production" {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		return err
	}
	logger = l
	return nil
}

func L() *zap.Logger { return logger }

func Sync() { _ = logger.Sync() }

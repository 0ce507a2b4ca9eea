package logger

import (
	"log"

	"go.uber.org/zap"
)

type Logger struct {
	ZLog *zap.SugaredLogger
}

// New создает логгер zap. Для env="release" используется production-конфигурация,
// иначе development с человекочитаемым выводом.
func New(env string) (*Logger, error) {
	var (
		logger *zap.Logger
		err    error
	)
	if env == "release" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Printf("Init logger: error %v", err)
		return &Logger{}, err
	}
	return &Logger{ZLog: logger.Sugar()}, nil
}

func (l *Logger) Sync() {
	if l.ZLog != nil {
		_ = l.ZLog.Sync()
	}
}

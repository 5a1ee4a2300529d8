package impl

import (
	"path/filepath"
	"time"

	rotatelogs "github.com/lestrrat/go-file-rotatelogs"
	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"
)

func newFileWriteASyncer(conf *config, level string) zapcore.WriteSyncer {
	name := level + ".log"
	if conf.appName != "" {
		name = conf.appName + "." + name
	}

	opts := []rotatelogs.Option{
		rotatelogs.WithLinkName(filepath.Join(conf.fileDir, name)),
		rotatelogs.WithMaxAge(7 * 24 * time.Hour),
		rotatelogs.WithRotationTime(24 * time.Hour),
	}
	if conf.clock != nil {
		// 轮转文件名跟随注入的时钟
		opts = append(opts, rotatelogs.WithClock(conf.clock))
	}

	w, err := rotatelogs.New(filepath.Join(conf.fileDir, name+".%Y%m%d"), opts...)
	checkErr(errors.Wrap(err, "rotatelogs"))

	var syncer zapcore.WriteSyncer = zapcore.AddSync(w)
	if conf.fileAsync {
		syncer = &zapcore.BufferedWriteSyncer{
			WS:            syncer,
			FlushInterval: time.Second,
		}
	}
	return syncer
}

func checkErr(err error) {
	if err != nil {
		panic(err)
	}
}

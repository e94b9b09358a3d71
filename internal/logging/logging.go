package logging

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Setup 配置 logrus 标准 logger：输出到 stderr，format 为 text 或 json
func Setup(level, format string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return errors.Wrap(err, "parse log level")
	}

	switch format {
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	case "", "text":
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return errors.Errorf("unknown log format %q", format)
	}

	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(lvl)
	return nil
}

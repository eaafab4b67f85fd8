package utils

import (
	"bytes"
	stdjson "encoding/json"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func PrettyJson(in any) string {
	var buffer []byte
	var err error

	if raw, ok := in.([]byte); ok {
		buffer = raw
	} else {
		buffer, err = json.Marshal(in)
		if err != nil {
			logrus.WithError(err).Warn("utils: failed to marshal value")
			return ""
		}
	}

	var out bytes.Buffer
	if err := stdjson.Indent(&out, buffer, "", "  "); err != nil {
		logrus.WithError(err).Warn("utils: failed to indent json")
		return string(buffer)
	}

	return out.String()
}

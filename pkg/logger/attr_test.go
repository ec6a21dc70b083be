package logger_test

import (
	"errors"
	"log/slog"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/deepvalid/pkg/logger"
)

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	assert.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestType(t *testing.T) {
	type booking struct{}
	attr := logger.Type(reflect.TypeOf(booking{}))
	assert.Equal(t, "type", attr.Key)
	assert.Equal(t, "logger_test.booking", attr.Value.String())

	assert.True(t, logger.Type(nil).Equal(slog.Attr{}))
}

func TestScalarAttrs(t *testing.T) {
	assert.Equal(t, "guests[0].firstName", logger.Path("guests[0].firstName").Value.String())
	assert.Equal(t, int64(5), logger.Count("violations", 5).Value.Int64())
	assert.Equal(t, time.Second, logger.Duration(time.Second).Value.Duration())
}

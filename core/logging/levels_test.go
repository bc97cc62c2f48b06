package logging_test

import (
	"testing"

	"github.com/usnistgov/mcpi/core/logging"
	"github.com/usnistgov/mcpi/core/testenv"
	"go.uber.org/zap/zapcore"
)

func TestLevels(t *testing.T) {
	assert, _ := testenv.MakeAR(t)
	t.Setenv(logging.EnvPrefix, "W")
	t.Setenv(logging.EnvPrefix+"_LevelsTestB", "D")

	a := logging.GetLevel("LevelsTestA")
	assert.EqualValues('W', a.Level())
	assert.False(a.Enabled(zapcore.InfoLevel))
	assert.True(a.Enabled(zapcore.WarnLevel))

	b := logging.GetLevel("LevelsTestB")
	assert.EqualValues('D', b.Level())
	assert.True(b.Enabled(zapcore.DebugLevel))
	assert.Same(b, logging.GetLevel("LevelsTestB"))

	b.SetLevel("bogus")
	assert.EqualValues('I', b.Level())
	assert.False(b.Enabled(zapcore.DebugLevel))

	var names []string
	for _, pl := range logging.ListLevels() {
		names = append(names, pl.Package())
	}
	assert.Subset(names, []string{"LevelsTestA", "LevelsTestB"})
	assert.IsIncreasing(names)
}

package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessage(t *testing.T) {
	err := InvalidScenario("low", "storage_gb must be non-negative, got %v", -1)
	assert.Equal(t, "[INVALID_SCENARIO] storage_gb must be non-negative, got -1", err.Error())
	assert.Equal(t, "low", err.Context["scenario"])

	wrapped := Parsing("failed to parse scenarios.hcl", fmt.Errorf("unexpected token"))
	assert.Equal(t, "[PARSING_ERROR] failed to parse scenarios.hcl: unexpected token", wrapped.Error())
}

func TestIsTypeThroughWrapping(t *testing.T) {
	base := InvalidScenario("high", "total cost is zero")
	wrapped := fmt.Errorf("estimate aws: %w", base)

	assert.True(t, IsType(base, TypeInvalidScenario))
	assert.True(t, IsType(wrapped, TypeInvalidScenario))
	assert.False(t, IsType(wrapped, TypeParsing))
	assert.False(t, IsType(fmt.Errorf("plain"), TypeInvalidScenario))
	assert.False(t, IsType(nil, TypeInvalidScenario))
}

func TestUnwrap(t *testing.T) {
	cause := fmt.Errorf("file missing")
	err := Config("failed to load config", cause)
	assert.Equal(t, cause, err.Unwrap())
	assert.True(t, err.Is(TypeConfig))
}

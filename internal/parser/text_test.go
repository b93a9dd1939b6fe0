package parser

import (
	"testing"

	"github.com/aleister1102/paramindex/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestSplitParameterLine(t *testing.T) {
	tests := []struct {
		line     string
		expected models.Parameter
	}{
		{line: "id=1", expected: models.Parameter{Key: "id", Value: "1"}},
		{line: " id = 1 ", expected: models.Parameter{Key: "id", Value: "1"}},
		{line: "debug", expected: models.Parameter{Key: "debug"}},
		{line: "next=/a?b=c", expected: models.Parameter{Key: "next", Value: "/a?b=c"}},
		{line: "flag=", expected: models.Parameter{Key: "flag"}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.expected, splitParameterLine(tt.line))
		})
	}
}

func TestNormalizeSpace(t *testing.T) {
	assert.Equal(t, "Dynamic URLs", normalizeSpace("\n  Dynamic \t URLs  "))
	assert.Equal(t, "", normalizeSpace("   "))
}

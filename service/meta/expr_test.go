package meta

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandEnvExpr(t *testing.T) {
	t.Setenv("ROOMPLAN_TEST_HOME", "/opt/roomplan")

	testCases := []struct {
		description string
		input       string
		expect      string
	}{
		{
			description: "single expression",
			input:       "base: ${env.ROOMPLAN_TEST_HOME}/data",
			expect:      "base: /opt/roomplan/data",
		},
		{
			description: "repeated expression",
			input:       "${env.ROOMPLAN_TEST_HOME}:${env.ROOMPLAN_TEST_HOME}",
			expect:      "/opt/roomplan:/opt/roomplan",
		},
		{
			description: "unset variable expands to empty",
			input:       "value: ${env.ROOMPLAN_TEST_UNSET}",
			expect:      "value: ",
		},
		{
			description: "non-env braces stay literal",
			input:       "value: ${env.}x ${home}",
			expect:      "value: x ${home}",
		},
		{
			description: "no expression",
			input:       "plain text",
			expect:      "plain text",
		},
	}

	for _, testCase := range testCases {
		actual := expandEnvExpr(testCase.input)
		assert.Equalf(t, testCase.expect, actual, testCase.description)
	}
}

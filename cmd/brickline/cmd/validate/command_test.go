package validate_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/brickline/cmd/application"
	"github.com/agentstation/brickline/cmd/brickline/cmd/validate"
	"github.com/agentstation/brickline/internal/cmd/output"
	"github.com/agentstation/brickline/pkg/errors"
)

const testdata = "../../../../pkg/codec/testdata"

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.xml")
	require.NoError(t, os.WriteFile(bad,
		[]byte("<INVENTORY><ITEM><ITEMTYPE>P</ITEMTYPE><ITEMID>1</ITEMID><CONDITION>Q</CONDITION></ITEM></INVENTORY>"), 0o644))
	good := filepath.Join(testdata, "test_wanted_list_3.xml")
	missing := filepath.Join(dir, "missing.xml")

	results := validate.Validate(&application.Mock{}, []string{good, bad, missing})
	require.Len(t, results, 3)

	assert.Equal(t, output.ValidationResult{File: good, Valid: true, Items: 5}, results[0])
	assert.False(t, results[1].Valid)
	assert.Contains(t, results[1].Error, "CONDITION")
	assert.False(t, results[2].Valid)
	assert.NotEmpty(t, results[2].Error)
}

func TestValidateCommand(t *testing.T) {
	tests := []struct {
		name    string
		files   []string
		wantErr bool
	}{
		{"all valid", []string{"bricklink_example.xml", "test_wanted_list_1.xml"}, false},
		{"one missing", []string{"bricklink_example.xml", "nope.xml"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := make([]string, 0, len(tt.files))
			for _, f := range tt.files {
				args = append(args, filepath.Join(testdata, f))
			}

			cmd := validate.NewCommand(&application.Mock{OutputFormatFunc: func() string { return "json" }})
			var out bytes.Buffer
			cmd.SetOut(&out)
			cmd.SetArgs(args)
			cmd.SilenceUsage = true
			cmd.SilenceErrors = true
			err := cmd.Execute()

			var results []output.ValidationResult
			require.NoError(t, json.Unmarshal(out.Bytes(), &results))
			assert.Len(t, results, len(tt.files))

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsValidationError(err))
				assert.Contains(t, err.Error(), "1 of 2 files")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

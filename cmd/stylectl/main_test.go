package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (map[string]any, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		return nil, err
	}

	var body map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &body))
	return body, nil
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestPersonaCmd_AnswerList(t *testing.T) {
	path := writeFile(t, "answers.json", `[{"question_id":"gender","selected_option":"Female"}]`)

	body, err := run(t, "persona", "--answers", path, "--prefs", "Old Money")
	require.NoError(t, err)

	p := body["persona"].(map[string]any)
	assert.Equal(t, "connoisseur", p["id"])
	assert.NotEmpty(t, body["hybridStyleName"])
	assert.NotEmpty(t, body["ranking"])
}

func TestPersonaCmd_ObjectWithPreferences(t *testing.T) {
	path := writeFile(t, "answers.json", `{"answers":[{"question_id":"gender","selected_option":"Male"}],"preferences":["Old Money"]}`)

	body, err := run(t, "persona", "--answers", path)
	require.NoError(t, err)
	assert.Equal(t, "connoisseur", body["persona"].(map[string]any)["id"])
}

func TestPersonaCmd_EmptyAnswers(t *testing.T) {
	path := writeFile(t, "answers.json", `[]`)

	_, err := run(t, "persona", "--answers", path)
	assert.Error(t, err)
}

func TestWeatherCmd_HotClearDay(t *testing.T) {
	body, err := run(t, "weather", "--temp", "95", "--condition", "Clear")
	require.NoError(t, err)

	params := body["params"].(map[string]any)
	assert.Equal(t, "Casual", params["occasion"])
	assert.Equal(t, "Minimalist", params["style"])
	assert.Equal(t, "Relaxed", params["mood"])

	fb := body["fallbackOutfit"].(map[string]any)
	assert.Contains(t, fb["name"], "Fallback")
}

func TestGoalsCmd(t *testing.T) {
	path := writeFile(t, "wardrobe.json", `[
		{"id":"1","name":"Navy blazer","type":"outerwear","color":"navy","season":"fall","style":"Old Money"},
		{"id":"2","name":"White shirt","type":"top","color":"white","season":"summer"},
		{"id":"3","name":"Chinos","type":"bottom","color":"beige","season":"spring"}
	]`)

	body, err := run(t, "goals", "--wardrobe", path, "--prefs", "Old Money, Minimalist")
	require.NoError(t, err)

	assert.NotEmpty(t, body["goals"])
	assert.Contains(t, body, "seasonBalance")
	gaps := body["gaps"].(map[string]any)
	assert.EqualValues(t, 3, gaps["totalItems"])
}

func TestGoalsCmd_MissingFile(t *testing.T) {
	_, err := run(t, "goals", "--wardrobe", filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b c"}, splitList(" a, ,b c ,"))
	assert.Nil(t, splitList(""))
}

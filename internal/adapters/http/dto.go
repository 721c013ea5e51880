package http

import "encoding/json"

// requestName extracts the "name" member of a POST /fortune body.
// Keys match exactly; a body that parses but is not an object, or whose
// name is absent or not a string, yields "". Only unparseable JSON fails.
func requestName(body []byte) (string, error) {
	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return "", err
	}
	m, _ := v.(map[string]any)
	name, _ := m["name"].(string)
	return name, nil
}

// FortuneResponse is the JSON shape returned by POST /fortune.
type FortuneResponse struct {
	FortuneText string   `json:"fortuneText"`
	Meta        MetaResp `json:"meta"`
}

type MetaResp struct {
	Mocked    bool   `json:"mocked"`
	Timestamp string `json:"timestamp"`
}

type HealthResponse struct {
	OK               bool `json:"ok"`
	OpenAIConfigured bool `json:"openaiConfigured"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

package utils

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"time"
)

// QueryLumiAI sends the given prompt to the external Lumi AI backend and
// returns its textual reply. Configure endpoint and key with LUMI_API_URL
// and LUMI_API_KEY environment variables.
func QueryLumiAI(prompt string) (string, error) {
	url := os.Getenv("LUMI_API_URL")
	key := os.Getenv("LUMI_API_KEY")
	if url == "" || key == "" {
		return "", errors.New("lumi ai not configured")
	}

	reqBody := map[string]interface{}{"prompt": prompt}
	b, _ := json.Marshal(reqBody)
	req, err := http.NewRequest("POST", url, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+key)

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", errors.New("lumi ai request failed: " + string(bodyBytes))
	}

	var parsed map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", err
	}

	for _, k := range []string{"output", "response", "text"} {
		if out, ok := parsed[k].(string); ok && out != "" {
			return out, nil
		}
	}
	if choices, ok := parsed["choices"].([]interface{}); ok && len(choices) > 0 {
		if f, ok := choices[0].(map[string]interface{}); ok {
			if t, ok := f["text"].(string); ok && t != "" {
				return t, nil
			}
			if m, ok := f["message"].(map[string]interface{}); ok {
				if t2, ok := m["content"].(string); ok && t2 != "" {
					return t2, nil
				}
			}
		}
	}

	b2, _ := json.Marshal(parsed)
	return string(b2), nil
}

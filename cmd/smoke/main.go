package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/fatih/color"
)

// Manual smoke walk against a running backend: session -> credential ->
// store create -> list -> delete -> session end. Needs a real API key in
// SMOKE_API_KEY; no assertions, just colorized output for eyeballing.

const baseURL = "http://localhost:3000/api"

var (
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
)

type baseResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func sendRequest(method, url, token string, body interface{}) (*http.Response, []byte, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		bodyReader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, baseURL+url, bodyReader)
	if err != nil {
		return nil, nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	return resp, respBody, err
}

func step(name string, resp *http.Response, body []byte, err error) json.RawMessage {
	if err != nil {
		fmt.Printf("%s %s: %v\n", red("✗"), name, err)
		os.Exit(1)
	}
	var parsed baseResponse
	_ = json.Unmarshal(body, &parsed)
	if resp.StatusCode >= 300 || !parsed.Success {
		fmt.Printf("%s %s (status %d): %s\n", red("✗"), name, resp.StatusCode, string(body))
		os.Exit(1)
	}
	fmt.Printf("%s %s: %s\n", green("✓"), name, parsed.Message)
	return parsed.Data
}

func main() {
	apiKey := os.Getenv("SMOKE_API_KEY")
	if apiKey == "" {
		fmt.Println(yellow("SMOKE_API_KEY is not set; store operations will fail with 400"))
	}

	resp, body, err := sendRequest("POST", "/session/v1", "", nil)
	data := step("create session", resp, body, err)

	var session struct {
		Token string `json:"token"`
	}
	_ = json.Unmarshal(data, &session)

	resp, body, err = sendRequest("PUT", "/settings/v1/credential", session.Token,
		map[string]string{"api_key": apiKey})
	step("set credential", resp, body, err)

	resp, body, err = sendRequest("POST", "/store/v1", session.Token,
		map[string]string{"name": "smoke_test"})
	data = step("create store", resp, body, err)

	var created struct {
		Id string `json:"id"`
	}
	_ = json.Unmarshal(data, &created)

	resp, body, err = sendRequest("GET", "/store/v1", session.Token, nil)
	step("list stores", resp, body, err)

	resp, body, err = sendRequest("DELETE", "/store/v1/"+created.Id, session.Token, nil)
	step("delete store", resp, body, err)

	resp, body, err = sendRequest("DELETE", "/session/v1", session.Token, nil)
	step("end session", resp, body, err)

	fmt.Println(green("smoke walk finished"))
}

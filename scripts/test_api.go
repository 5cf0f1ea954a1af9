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

const baseURL = "http://localhost:5000/api"

// Pretty print JSON helper
func prettyPrint(raw []byte) {
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		fmt.Println(string(raw))
		return
	}
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(b))
}

// Request helper
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

	client := &http.Client{} // No timeout, generation can be slow
	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	return resp, respBody, nil
}

func main() {
	color.Cyan("🚀 Starting AI Tutor API Smoke Test\n")

	email := fmt.Sprintf("smoke-%d@example.com", os.Getpid())

	color.Yellow("\n1. Register")
	resp, body, err := sendRequest("POST", "/auth/register", "", map[string]string{
		"name": "Smoke Tester", "email": email, "password": "password123",
	})
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	prettyPrint(body)

	color.Yellow("\n2. Login")
	resp, body, err = sendRequest("POST", "/auth/login", "", map[string]string{
		"email": email, "password": "password123",
	})
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)

	var login struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	_ = json.Unmarshal(body, &login)
	token := login.Data.Token
	if token == "" {
		color.Red("No token returned, aborting")
		os.Exit(1)
	}

	color.Yellow("\n3. Summarize (anonymous)")
	resp, body, err = sendRequest("POST", "/summarize", "", map[string]string{
		"text": "Photosynthesis is the process by which green plants convert sunlight into chemical energy.",
	})
	if err != nil {
		color.Red("Failed: %v", err)
	} else {
		color.Green("Status: %s", resp.Status)
		prettyPrint(body)
	}

	color.Yellow("\n4. Summarize (authenticated, should persist a session)")
	resp, body, err = sendRequest("POST", "/summarize", token, map[string]string{
		"text": "The mitochondria is the powerhouse of the cell.",
	})
	if err != nil {
		color.Red("Failed: %v", err)
	} else {
		color.Green("Status: %s", resp.Status)
		prettyPrint(body)
	}

	color.Yellow("\n5. Generate Exercises")
	resp, body, err = sendRequest("POST", "/generate_exercises", token, map[string]string{
		"text": "Newton's laws of motion describe the relationship between forces and movement.",
	})
	if err != nil {
		color.Red("Failed: %v", err)
	} else {
		color.Green("Status: %s", resp.Status)
		prettyPrint(body)
	}

	color.Yellow("\n6. List Sessions")
	resp, body, err = sendRequest("GET", "/sessions", token, nil)
	if err != nil {
		color.Red("Failed: %v", err)
	} else {
		color.Green("Status: %s", resp.Status)
		prettyPrint(body)
	}

	color.Yellow("\n7. Create Collection and List")
	resp, body, err = sendRequest("POST", "/collections", token, map[string]string{"name": "Smoke Collection"})
	if err != nil {
		color.Red("Failed: %v", err)
	} else {
		color.Green("Status: %s", resp.Status)
		prettyPrint(body)
	}

	color.Cyan("\n✅ Smoke Test Complete")
}

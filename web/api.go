package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
)

// envelope is the API's standard response shape.
type envelope struct {
	Success bool            `json:"success"`
	Count   int             `json:"count"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// apiCall sends a JSON request and decodes the envelope's data into out.
// The session cookie rides along automatically; out may be nil when the
// caller only cares about success.
func apiCall(method, url string, payload, out any) error {
	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	if !env.Success {
		if env.Error != "" {
			return fmt.Errorf("%s", env.Error)
		}
		return fmt.Errorf("request failed with status %d", resp.StatusCode)
	}
	if out != nil && len(env.Data) > 0 {
		return json.Unmarshal(env.Data, out)
	}
	return nil
}

func apiGet(url string, out any) error {
	return apiCall(http.MethodGet, url, nil, out)
}

func apiPost(url string, payload, out any) error {
	return apiCall(http.MethodPost, url, payload, out)
}

func apiPut(url string, payload, out any) error {
	return apiCall(http.MethodPut, url, payload, out)
}

func apiDelete(url string) error {
	return apiCall(http.MethodDelete, url, nil, nil)
}

func register(username, email, password, workspaceName string) (*AuthResult, error) {
	var result AuthResult
	err := apiPost("/api/auth/register", map[string]string{
		"username":      username,
		"email":         email,
		"password":      password,
		"workspaceName": workspaceName,
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func login(email, password, workspaceCode string) (*AuthResult, error) {
	var result AuthResult
	err := apiPost("/api/auth/login", map[string]string{
		"email":         email,
		"password":      password,
		"workspaceCode": workspaceCode,
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func logout() error {
	return apiPost("/api/auth/logout", nil, nil)
}

func joinWorkspace(code string) (*Workspace, error) {
	var ws Workspace
	err := apiPost("/api/auth/join-workspace", map[string]string{"workspaceCode": code}, &ws)
	if err != nil {
		return nil, err
	}
	return &ws, nil
}

func fetchWorkspaces() ([]WorkspaceView, error) {
	var views []WorkspaceView
	if err := apiGet("/api/workspaces", &views); err != nil {
		return nil, err
	}
	return views, nil
}

func createWorkspace(name, description string) (*Workspace, error) {
	var ws Workspace
	err := apiPost("/api/workspaces/create", map[string]string{
		"name":        name,
		"description": description,
	}, &ws)
	if err != nil {
		return nil, err
	}
	return &ws, nil
}

func removeMember(workspaceID, memberID int64) error {
	return apiDelete(fmt.Sprintf("/api/workspaces/%d/members/%d", workspaceID, memberID))
}

func fetchBugs(workspaceID int64) ([]Bug, error) {
	var bugs []Bug
	if err := apiGet(fmt.Sprintf("/api/bugs?workspaceId=%d", workspaceID), &bugs); err != nil {
		return nil, err
	}
	return bugs, nil
}

func createBug(payload map[string]any) (*Bug, error) {
	var bug Bug
	if err := apiPost("/api/bugs", payload, &bug); err != nil {
		return nil, err
	}
	return &bug, nil
}

func updateBug(bugID int64, payload map[string]any) (*Bug, error) {
	var bug Bug
	if err := apiPut(fmt.Sprintf("/api/bugs/%d", bugID), payload, &bug); err != nil {
		return nil, err
	}
	return &bug, nil
}

func deleteBug(bugID int64) error {
	return apiDelete(fmt.Sprintf("/api/bugs/%d", bugID))
}

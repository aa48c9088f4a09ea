package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"pet-care-tracker/internal/router"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	// sin DSN ni path: repos en memoria
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	t.Cleanup(ts.Close)
	return ts
}

func TestHTTP_EndToEnd_DailyRoutineFlow(t *testing.T) {
	ts := newTestServer(t)

	// 1) Alta de mascota
	petID := createPet(t, ts.URL, map[string]any{
		"name":  "Fred",
		"breed": "schnauzer",
		"age":   9,
	})

	// 2) Dos templates activos
	createTemplate(t, ts.URL, petID, "evening", "walk")
	createTemplate(t, ts.URL, petID, "morning", "feed")

	// 3) ensure-daily siembra un item por template
	first := ensureDaily(t, ts.URL, petID, "2024-01-01")
	if len(first) != 2 {
		t.Fatalf("expected 2 seeded items, got %d", len(first))
	}

	// 4) repetir no duplica y devuelve los mismos ids
	second := ensureDaily(t, ts.URL, petID, "2024-01-01")
	if len(second) != 2 {
		t.Fatalf("expected 2 items on repeat, got %d", len(second))
	}
	ids := map[string]bool{}
	for _, it := range first {
		ids[it["id"].(string)] = true
	}
	for _, it := range second {
		if !ids[it["id"].(string)] {
			t.Fatalf("repeat returned unknown item id %v", it["id"])
		}
	}

	// 5) listado con sort=period: morning antes que evening
	st, body := doReq(t, ts.URL, "GET", "/api/routine-items?pet_id="+petID+"&date=2024-01-01&sort=period", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 list items, got %d body=%s", st, string(body))
	}
	var items []map[string]any
	if err := json.Unmarshal(body, &items); err != nil {
		t.Fatalf("unmarshal items: %v", err)
	}
	if len(items) != 2 || items[0]["period"] != "morning" || items[1]["period"] != "evening" {
		t.Fatalf("period sort wrong: %v", items)
	}

	// 6) completar un item vía PATCH
	itemID := items[0]["id"].(string)
	st, body = doReq(t, ts.URL, "PATCH", "/api/routine-items/"+itemID, map[string]any{
		"completed":    true,
		"completed_at": "2024-01-01T08:30:00",
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 patch item, got %d body=%s", st, string(body))
	}
	var patched map[string]any
	_ = json.Unmarshal(body, &patched)
	if patched["completed"] != true || patched["completed_at"] == nil {
		t.Fatalf("item not completed: %v", patched)
	}
}

func TestHTTP_Glucose_TimeOfDayIsServerSide(t *testing.T) {
	ts := newTestServer(t)

	petID := createPet(t, ts.URL, map[string]any{"name": "Fred"})

	st, body := doReq(t, ts.URL, "POST", "/api/glucose-readings?pet_id="+petID, map[string]any{
		"value":    112.5,
		"protocol": "jejum",
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create reading, got %d body=%s", st, string(body))
	}

	var reading map[string]any
	_ = json.Unmarshal(body, &reading)
	tod, _ := reading["time_of_day"].(string)
	switch tod {
	case "dawn", "morning", "afternoon", "evening":
	default:
		t.Fatalf("time_of_day = %q, must be server-assigned", tod)
	}

	// PATCH no puede tocar time_of_day
	st, body = doReq(t, ts.URL, "PATCH", "/api/glucose-readings/"+reading["id"].(string), map[string]any{
		"value": 98.0,
		"notes": "pos paseo",
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 patch reading, got %d body=%s", st, string(body))
	}
	var after map[string]any
	_ = json.Unmarshal(body, &after)
	if after["time_of_day"] != tod {
		t.Fatalf("time_of_day changed on patch: %v -> %v", tod, after["time_of_day"])
	}
	if after["value"] != 98.0 {
		t.Fatalf("value = %v, want 98", after["value"])
	}
}

func TestHTTP_Mood_CreateListDelete(t *testing.T) {
	ts := newTestServer(t)

	petID := createPet(t, ts.URL, map[string]any{"name": "Fred"})

	st, body := doReq(t, ts.URL, "POST", "/api/mood-entries?pet_id="+petID, map[string]any{
		"energy_level": "alta",
		"general_mood": []string{"brincalhao", "carinhoso"},
		"appetite":     "normal",
		"walk":         "longo",
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create mood, got %d body=%s", st, string(body))
	}
	var entry map[string]any
	_ = json.Unmarshal(body, &entry)

	st, body = doReq(t, ts.URL, "GET", "/api/mood-entries?pet_id="+petID, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 list mood, got %d body=%s", st, string(body))
	}
	var list []map[string]any
	_ = json.Unmarshal(body, &list)
	if len(list) != 1 {
		t.Fatalf("expected 1 mood entry, got %d", len(list))
	}

	st, body = doReq(t, ts.URL, "DELETE", "/api/mood-entries/"+entry["id"].(string), nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 delete mood, got %d body=%s", st, string(body))
	}
}

func TestHTTP_Walks_CreatePatchDelete(t *testing.T) {
	ts := newTestServer(t)

	petID := createPet(t, ts.URL, map[string]any{"name": "Fred"})

	// crear paseo abierto (sin end_time)
	st, body := doReq(t, ts.URL, "POST", "/api/walk-entries?pet_id="+petID, map[string]any{
		"start_time":   "2024-01-01T07:00:00",
		"energy_level": "alta",
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create walk, got %d body=%s", st, string(body))
	}
	var walk map[string]any
	_ = json.Unmarshal(body, &walk)
	if walk["end_time"] != nil || walk["duration_seconds"] != nil {
		t.Fatalf("open walk must have nil end/duration: %v", walk)
	}
	if walk["date"] != "2024-01-01" {
		t.Fatalf("date = %v, want 2024-01-01 (derivada del start)", walk["date"])
	}

	// cerrar el paseo: la duración se deriva del start existente
	walkID := walk["id"].(string)
	st, body = doReq(t, ts.URL, "PATCH", "/api/walk-entries/"+walkID, map[string]any{
		"end_time": "2024-01-01T07:02:05",
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 patch walk, got %d body=%s", st, string(body))
	}
	var closed map[string]any
	_ = json.Unmarshal(body, &closed)
	if closed["duration_seconds"] != 125.0 {
		t.Fatalf("duration_seconds = %v, want 125", closed["duration_seconds"])
	}

	// listar
	st, body = doReq(t, ts.URL, "GET", "/api/walk-entries?pet_id="+petID, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 list walks, got %d body=%s", st, string(body))
	}
	var walksList []map[string]any
	_ = json.Unmarshal(body, &walksList)
	if len(walksList) != 1 {
		t.Fatalf("expected 1 walk, got %d", len(walksList))
	}

	// borrar
	st, body = doReq(t, ts.URL, "DELETE", "/api/walk-entries/"+walkID, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 delete walk, got %d body=%s", st, string(body))
	}
}

func TestHTTP_NotFound_StructuredBody(t *testing.T) {
	ts := newTestServer(t)

	st, body := doReq(t, ts.URL, "GET", "/api/pets/nope", nil)
	if st != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", st, string(body))
	}

	var resp struct {
		Error      string `json:"error"`
		Message    string `json:"message"`
		StatusCode int    `json:"statusCode"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("unmarshal error body: %v body=%s", err, string(body))
	}
	if resp.Error != "not_found" || resp.Message != "Pet not found" || resp.StatusCode != 404 {
		t.Fatalf("error body wrong: %+v", resp)
	}
}

func TestHTTP_ChildEndpoints_RejectUnknownPet(t *testing.T) {
	ts := newTestServer(t)

	st, _ := doReq(t, ts.URL, "POST", "/api/routine-templates?pet_id=nope", map[string]any{
		"period": "morning",
		"task":   "feed",
	})
	if st != http.StatusNotFound {
		t.Fatalf("expected 404 template for unknown pet, got %d", st)
	}

	st, _ = doReq(t, ts.URL, "POST", "/api/walk-entries?pet_id=nope", map[string]any{
		"start_time": "2024-01-01T07:00:00",
	})
	if st != http.StatusNotFound {
		t.Fatalf("expected 404 walk for unknown pet, got %d", st)
	}
}

func createPet(t *testing.T, baseURL string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/api/pets", payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create pet, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("create pet: missing id body=%s", string(body))
	}
	return resp.ID
}

func createTemplate(t *testing.T, baseURL, petID, period, task string) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/api/routine-templates?pet_id="+petID, map[string]any{
		"period": period,
		"task":   task,
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create template, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("create template: missing id body=%s", string(body))
	}
	return resp.ID
}

func ensureDaily(t *testing.T, baseURL, petID, date string) []map[string]any {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/api/routine-items/ensure-daily?pet_id="+petID+"&date="+date, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 ensure-daily, got %d body=%s", st, string(body))
	}

	var items []map[string]any
	if err := json.Unmarshal(body, &items); err != nil {
		t.Fatalf("unmarshal ensure-daily: %v body=%s", err, string(body))
	}
	return items
}

func doReq(t *testing.T, baseURL, method, path string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}

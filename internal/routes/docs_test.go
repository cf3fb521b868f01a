package routes_test

import (
	"encoding/json"
	"net/http"
	"slices"
	"strings"
	"testing"

	"github.com/swaggo/swag"

	_ "FITZEN_BACK-END/docs"
)

var documentedRoutes = []string{
	"GET /health",

	"POST /api/auth/send-otp",
	"POST /api/auth/verify-otp",
	"POST /api/auth/google-signin",
	"POST /api/auth/apple-signin",

	"GET /api/users/{id}",
	"PUT /api/users/{id}",
	"POST /api/users/{id}/onboarding",
	"POST /api/users/{id}/premium",

	"GET /api/workouts/{user_id}",
	"POST /api/workouts",
	"PUT /api/workouts/{id}",
	"DELETE /api/workouts/{id}",
	"POST /api/workouts/generate-plan",
	"GET /api/workouts/stats/{user_id}",

	"GET /api/nutrition/log/{user_id}",
	"POST /api/nutrition/log",
	"DELETE /api/nutrition/log/{id}",
	"GET /api/nutrition/daily-summary/{user_id}",
	"POST /api/nutrition/generate-meal-plan",
	"GET /api/nutrition/recipes",
	"GET /api/nutrition/recipes/{id}",
	"POST /api/nutrition/recipes/suggest",

	"GET /api/goals/{user_id}",
	"POST /api/goals",
	"PUT /api/goals/{id}",
	"DELETE /api/goals/{id}",
	"POST /api/goals/{id}/progress",

	"GET /api/habits/{user_id}",
	"POST /api/habits",
	"PUT /api/habits/{id}",
	"DELETE /api/habits/{id}",
	"POST /api/habits/{id}/complete",
	"POST /api/habits/{id}/skip",
	"GET /api/habits/analyze/{user_id}",

	"GET /api/measurements/{user_id}",
	"POST /api/measurements",
	"PUT /api/measurements/{id}",
	"DELETE /api/measurements/{id}",
	"GET /api/measurements/latest/{user_id}",
	"GET /api/measurements/progress/{user_id}",

	"GET /api/reminders/{user_id}",
	"POST /api/reminders",
	"PUT /api/reminders/{id}",
	"DELETE /api/reminders/{id}",
	"POST /api/reminders/{id}/toggle",
	"GET /api/reminders/upcoming/{user_id}",

	"POST /api/chat/message",
	"GET /api/chat/history/{user_id}",
	"DELETE /api/chat/clear/{user_id}",
}

type swaggerDoc struct {
	Paths       map[string]map[string]json.RawMessage `json:"paths"`
	Definitions map[string]json.RawMessage            `json:"definitions"`
}

func readSwaggerDoc(t *testing.T) swaggerDoc {
	t.Helper()
	raw, err := swag.ReadDoc()
	if err != nil {
		t.Fatalf("ReadDoc: %v", err)
	}
	var doc swaggerDoc
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("decode swagger doc: %v", err)
	}
	return doc
}

func TestSwaggerDocumentsEveryRoute(t *testing.T) {
	t.Parallel()

	doc := readSwaggerDoc(t)
	var got []string
	for path, ops := range doc.Paths {
		for method := range ops {
			got = append(got, strings.ToUpper(method)+" "+path)
		}
	}
	slices.Sort(got)
	want := slices.Sorted(slices.Values(documentedRoutes))
	if !slices.Equal(got, want) {
		t.Fatalf("documented routes differ\nwant %v\ngot  %v", want, got)
	}

	for _, name := range []string{"dto.WorkoutResponse", "models.Workout", "services.WorkoutStats", "dto.ErrorResponse"} {
		if _, ok := doc.Definitions[name]; !ok {
			t.Fatalf("missing definition %s", name)
		}
	}
}

func TestDocumentedRoutesAreMounted(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	for _, route := range documentedRoutes {
		method, path, _ := strings.Cut(route, " ")
		path = strings.NewReplacer("{id}", "x", "{user_id}", "x").Replace(path)

		rec := env.do(t, method, path, "{}")
		if rec.Code == http.StatusMethodNotAllowed || strings.HasPrefix(rec.Body.String(), "404 page not found") {
			t.Fatalf("%s is documented but not routed: %d %s", route, rec.Code, rec.Body.String())
		}
	}
}

func TestSwaggerUIServesDoc(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/swagger/doc.json", nil)
	expectStatus(t, rec, http.StatusOK)
	if !strings.Contains(rec.Body.String(), `"/api/workouts/{id}"`) {
		t.Fatalf("doc.json is missing the workout routes")
	}
}

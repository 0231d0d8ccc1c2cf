package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net/http"
	"sort"
	"sync"
	"time"

	vegeta "github.com/tsenart/vegeta/v12/lib"
)

var statuses = []string{"pending", "approved", "rejected"}

type scenario struct {
	host     string
	adminID  string
	users    []string
	projects map[string][]string // projectID по автору

	mu  sync.Mutex
	rnd *rand.Rand

	httpc *http.Client
}

func newScenario(host, adminID string, users, projectsPerUser int, seed int64) *scenario {
	s := &scenario{
		host:     host,
		adminID:  adminID,
		projects: make(map[string][]string),
		rnd:      rand.New(rand.NewSource(seed)),
		httpc:    &http.Client{Timeout: 10 * time.Second},
	}
	run := seed % 100000
	for u := 1; u <= users; u++ {
		uid := fmt.Sprintf("load-%d-u%d", run, u)
		s.users = append(s.users, uid)
		for p := 1; p <= projectsPerUser; p++ {
			s.projects[uid] = append(s.projects[uid], fmt.Sprintf("load-%d-u%d-p%d", run, u, p))
		}
	}
	return s
}

func (s *scenario) headers(userID, role string) http.Header {
	h := http.Header{}
	h.Set("Content-Type", "application/json")
	h.Set("Accept", "application/json")
	h.Set("X-User-ID", userID)
	if role != "" {
		h.Set("X-User-Role", role)
	}
	return h
}

func (s *scenario) do(method, url string, header http.Header, body any) (int, []byte, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return 0, nil, err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		return 0, nil, err
	}
	req.Header = header

	resp, err := s.httpc.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	return resp.StatusCode, raw, err
}

// Seed
func (s *scenario) seed() error {
	log.Println("Seeding: creating projects...")

	for _, uid := range s.users {
		for _, pid := range s.projects[uid] {
			status, _, err := s.do(http.MethodPost, s.host+"/projects", s.headers(uid, ""), map[string]string{
				"project_id": pid,
				"title":      "Load project " + pid,
			})
			if err != nil {
				return err
			}
			if status >= 400 {
				log.Printf("WARN POST /projects returned %d\n", status)
			}
		}
	}

	log.Printf("Seed completed: users=%d projects=%d\n", len(s.users), len(s.users)*len(s.projects[s.users[0]]))
	return nil
}

func (s *scenario) pick(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Intn(n)
}

func (s *scenario) roll() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Float64()
}

// Targeter
func (s *scenario) targeter() vegeta.Targeter {
	return func(t *vegeta.Target) error {
		r := s.roll()
		uid := s.users[s.pick(len(s.users))]

		// 45% POST /contributions: конкурирующие записи одного пользователя
		if r < 0.45 {
			body, _ := json.Marshal(map[string]string{
				"contribution_id": fmt.Sprintf("%s-c%d", uid, time.Now().UnixNano()),
				"description":     "load contribution",
			})
			t.Method = http.MethodPost
			t.URL = s.host + "/contributions"
			t.Body = body
			t.Header = s.headers(uid, "")
			return nil
		}

		// 30% PUT /projects/{id}/status: переключение статуса администратором
		if r < 0.75 {
			projects := s.projects[uid]
			pid := projects[s.pick(len(projects))]
			body, _ := json.Marshal(map[string]string{"status": statuses[s.pick(len(statuses))]})
			t.Method = http.MethodPut
			t.URL = fmt.Sprintf("%s/projects/%s/status", s.host, pid)
			t.Body = body
			t.Header = s.headers(s.adminID, "admin")
			return nil
		}

		// 20% GET /users/{id}/stats
		if r < 0.95 {
			t.Method = http.MethodGet
			t.URL = fmt.Sprintf("%s/users/%s/stats", s.host, uid)
			t.Body = nil
			t.Header = s.headers(uid, "")
			return nil
		}

		// 5% GET /stats/leaderboard
		t.Method = http.MethodGet
		t.URL = s.host + "/stats/leaderboard?limit=10"
		t.Body = nil
		t.Header = s.headers(uid, "")
		return nil
	}
}

type report struct {
	metrics vegeta.Metrics
}

func (r *report) print(w io.Writer) {
	fmt.Fprintln(w, "=== Results ===")
	fmt.Fprintf(w, "Requests: %d\n", r.metrics.Requests)
	fmt.Fprintf(w, "Success rate: %.4f%%\n", r.metrics.Success*100)
	fmt.Fprintf(w, "Latency mean: %s\n", r.metrics.Latencies.Mean)
	fmt.Fprintf(w, "Latency P95: %s\n", r.metrics.Latencies.P95)
	fmt.Fprintf(w, "Latency P99: %s\n", r.metrics.Latencies.P99)

	codes := make([]string, 0, len(r.metrics.StatusCodes))
	for code := range r.metrics.StatusCodes {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	for _, code := range codes {
		fmt.Fprintf(w, "Status %s: %d\n", code, r.metrics.StatusCodes[code])
	}
}

// Attack
func (s *scenario) attack(rps int, duration time.Duration) *report {
	rate := vegeta.Rate{Freq: rps, Per: time.Second}
	attacker := vegeta.NewAttacker()

	r := &report{}
	log.Printf("Starting attack: %s for %s", s.host, duration)
	for res := range attacker.Attack(s.targeter(), rate, duration, "contribution-tracker") {
		r.metrics.Add(res)
	}
	r.metrics.Close()
	return r
}

type statsResponse struct {
	Stats struct {
		UserID           string `json:"user_id"`
		TotalProjects    int    `json:"total_projects"`
		ApprovedProjects int    `json:"approved_projects"`
		PendingProjects  int    `json:"pending_projects"`
		RejectedProjects int    `json:"rejected_projects"`
	} `json:"stats"`
}

// verify проверяет инвариант суммы счётчиков для каждого пользователя пула.
func (s *scenario) verify() ([]string, error) {
	var violations []string
	for _, uid := range s.users {
		status, raw, err := s.do(http.MethodGet, fmt.Sprintf("%s/users/%s/stats", s.host, uid), s.headers(uid, ""), nil)
		if err != nil {
			return nil, err
		}
		if status != http.StatusOK {
			return nil, fmt.Errorf("GET stats for %s returned %d", uid, status)
		}

		var resp statsResponse
		if err := json.Unmarshal(raw, &resp); err != nil {
			return nil, err
		}
		if v := checkCounters(resp, len(s.projects[uid])); v != "" {
			violations = append(violations, uid+": "+v)
		}
	}
	return violations, nil
}

func checkCounters(resp statsResponse, expectedTotal int) string {
	st := resp.Stats
	if st.PendingProjects < 0 || st.ApprovedProjects < 0 || st.RejectedProjects < 0 {
		return fmt.Sprintf("negative counter %+v", st)
	}
	if st.PendingProjects+st.ApprovedProjects+st.RejectedProjects != st.TotalProjects {
		return fmt.Sprintf("counters do not add up %+v", st)
	}
	if st.TotalProjects != expectedTotal {
		return fmt.Sprintf("total %d, expected %d", st.TotalProjects, expectedTotal)
	}
	return ""
}

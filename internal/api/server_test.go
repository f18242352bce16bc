package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"

	"laytime-calculator/internal/api"
	"laytime-calculator/internal/api/models"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const charterVessel = `{
  "name": "TB Charter 07",
  "laden_speed_knots": 5,
  "ballast_speed_knots": 5,
  "mode": "charter",
  "consumption": {"rate": 100},
  "charter": {"hire": 300000000}
}`

const intervalJob = `{
  "meta": {"tug_boat": "TB Sinar 01", "barge": "BG Sinar 02"},
  "terms": {"free_time_days": 0.25, "rate_per_day": 10000000},
  "pol": {"rows": [{"date": "2025-10-20", "from": "08:00", "to": "14:30", "note": "Loading"}]},
  "pod": {"rows": [{"date": "2025-10-22", "from": "22:00", "to": "02:00", "note": "Discharge"}]},
  "options": {"include_ledger": true}
}`

var _ = Describe("API server", func() {
	var (
		srv     *api.Server
		handler http.Handler
	)

	do := func(method, path, body string) *httptest.ResponseRecorder {
		var req *http.Request
		if body == "" {
			req = httptest.NewRequest(method, path, nil)
		} else {
			req = httptest.NewRequest(method, path, strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
		}
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		return w
	}

	decode := func(w *httptest.ResponseRecorder, v any) {
		Expect(json.Unmarshal(w.Body.Bytes(), v)).To(Succeed())
	}

	BeforeEach(func() {
		var err error
		srv, err = api.NewServer(api.Options{
			VesselDir: GinkgoT().TempDir(),
			Logger:    zap.NewNop(),
		})
		Expect(err).To(BeNil())
		handler = srv.Handler()
	})

	AfterEach(func() {
		srv.Close()
	})

	Context("health and metadata", func() {
		It("reports ok", func() {
			w := do(http.MethodGet, "/health", "")
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring(`"ok"`))
		})

		It("lists both duration policies with interval_sum as default", func() {
			w := do(http.MethodGet, "/api/v1/policies", "")
			Expect(w.Code).To(Equal(http.StatusOK))

			var body struct {
				Policies []models.PolicyInfo `json:"policies"`
			}
			decode(w, &body)
			Expect(body.Policies).To(HaveLen(2))
			Expect(body.Policies[1].Name).To(Equal("interval_sum"))
			Expect(body.Policies[1].Default).To(BeTrue())
		})

		It("exposes calculation metrics", func() {
			Expect(do(http.MethodPost, "/api/v1/laytime", intervalJob).Code).To(Equal(http.StatusOK))
			w := do(http.MethodGet, "/metrics", "")
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring(`laytime_calculations_total`))
			Expect(w.Body.String()).To(ContainSubstring(`variant="interval_sum"`))
		})

		It("answers CORS preflight requests", func() {
			req := httptest.NewRequest(http.MethodOptions, "/api/v1/laytime", nil)
			req.Header.Set("Origin", "https://app.example")
			req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusNoContent))
			Expect(w.Header().Get("Access-Control-Allow-Origin")).To(Equal("*"))
		})
	})

	Context("laytime", func() {
		It("computes detention under the interval policy", func() {
			w := do(http.MethodPost, "/api/v1/laytime", intervalJob)
			Expect(w.Code).To(Equal(http.StatusOK))

			var resp models.LaytimeResponse
			decode(w, &resp)
			Expect(resp.ID).NotTo(BeEmpty())
			Expect(resp.Summary.Policy).To(Equal("interval_sum"))
			Expect(resp.Summary.PolHours).To(BeNumerically("~", 6.5, 1e-9))
			Expect(resp.Summary.PodHours).To(BeNumerically("~", 4, 1e-9))
			Expect(resp.Summary.DetentionDays).To(BeNumerically("~", 0.1875, 1e-9))
			Expect(resp.Summary.TotalCost).To(BeNumerically("~", 1_875_000, 1e-3))
			Expect(resp.Ledger).To(HaveLen(2))
			Expect(resp.Formatted.Summary[5].Value).To(Equal("Rp 1.875.000"))
		})

		It("serves the cached ledger and workbook", func() {
			var resp models.LaytimeResponse
			decode(do(http.MethodPost, "/api/v1/laytime", intervalJob), &resp)

			w := do(http.MethodGet, "/api/v1/laytime/"+resp.ID+"/ledger", "")
			Expect(w.Code).To(Equal(http.StatusOK))
			var ledger models.LedgerResponse
			decode(w, &ledger)
			Expect(ledger.Ledger).To(HaveLen(2))
			Expect(ledger.Ledger[1].Location).To(Equal("POD"))

			w = do(http.MethodGet, "/api/v1/laytime/"+resp.ID+"/ledger?format=csv", "")
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(HavePrefix("index,location,date"))

			w = do(http.MethodGet, "/api/v1/laytime/"+resp.ID+"/workbook", "")
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Header().Get("Content-Disposition")).To(ContainSubstring("Voyage_Report_TB Sinar 01.xlsx"))
			f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
			Expect(err).To(BeNil())
			Expect(f.GetSheetList()).To(Equal([]string{"Summary", "POL", "POD"}))
			Expect(f.Close()).To(Succeed())
		})

		It("returns 404 for an unknown result id", func() {
			w := do(http.MethodGet, "/api/v1/laytime/nope/ledger", "")
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})

		It("rejects negative rates as invalid input", func() {
			body := strings.Replace(intervalJob, `"rate_per_day": 10000000`, `"rate_per_day": -1`, 1)
			w := do(http.MethodPost, "/api/v1/laytime", body)
			Expect(w.Code).To(Equal(http.StatusBadRequest))

			var resp models.ErrorResponse
			decode(w, &resp)
			Expect(resp.Error.Code).To(Equal("INVALID_INPUT"))
			Expect(resp.Error.Details["field"]).To(Equal("terms.rate_per_day"))
		})

		It("rejects a log shaped for the other policy", func() {
			body := strings.Replace(intervalJob, `"terms"`, `"policy": "span", "terms"`, 1)
			w := do(http.MethodPost, "/api/v1/laytime", body)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(w.Body.String()).To(ContainSubstring("INVALID_INPUT"))
		})

		It("rejects malformed JSON", func() {
			w := do(http.MethodPost, "/api/v1/laytime", "{")
			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(w.Body.String()).To(ContainSubstring("INVALID_REQUEST"))
		})
	})

	Context("vessels and voyage cost", func() {
		BeforeEach(func() {
			Expect(do(http.MethodPut, "/api/v1/vessels/charter-07", charterVessel).Code).To(Equal(http.StatusOK))
		})

		It("lists and reads stored profiles", func() {
			w := do(http.MethodGet, "/api/v1/vessels", "")
			Expect(w.Code).To(Equal(http.StatusOK))
			var list struct {
				Vessels []models.VesselInfo `json:"vessels"`
			}
			decode(w, &list)
			Expect(list.Vessels).To(HaveLen(1))
			Expect(list.Vessels[0].Mode).To(Equal("charter"))

			w = do(http.MethodGet, "/api/v1/vessels/charter-07", "")
			Expect(w.Code).To(Equal(http.StatusOK))
			var v models.VesselResponse
			decode(w, &v)
			Expect(v.Vessel.Charter.Hire).To(Equal(300_000_000.0))

			Expect(do(http.MethodGet, "/api/v1/vessels/missing", "").Code).To(Equal(http.StatusNotFound))
		})

		It("rejects an invalid profile", func() {
			w := do(http.MethodPut, "/api/v1/vessels/bad", `{"mode": "leased"}`)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(w.Body.String()).To(ContainSubstring("INVALID_INPUT"))
		})

		It("estimates a voyage from a stored profile", func() {
			w := do(http.MethodPost, "/api/v1/voyage-cost", `{
  "meta": {"tug_boat": "TB Charter 07"},
  "vessel_file": "charter-07",
  "route": {"laden_distance_nm": 500, "ballast_distance_nm": 500, "bunker_price": 15000},
  "cargo_tons": 7500
}`)
			Expect(w.Code).To(Equal(http.StatusOK))

			var resp models.VoyageCostResponse
			decode(w, &resp)
			Expect(resp.Summary.Mode).To(Equal("charter"))
			Expect(resp.Summary.SailingHours).To(BeNumerically("~", 200, 1e-9))
			Expect(resp.Scenarios).To(HaveLen(11))
			Expect(resp.Summary.CostPerTon).To(BeNumerically("~", resp.Summary.TotalCost/7500, 1e-6))

			w = do(http.MethodGet, "/api/v1/voyage-cost/"+resp.ID+"/workbook", "")
			Expect(w.Code).To(Equal(http.StatusOK))

			w = do(http.MethodGet, "/api/v1/voyage-cost/"+resp.ID+"/scenarios", "")
			Expect(w.Code).To(Equal(http.StatusOK))
			var scen models.ScenariosResponse
			decode(w, &scen)
			Expect(scen.Scenarios).To(HaveLen(11))
			Expect(scen.Scenarios[0].FreightPerTon).To(BeNumerically("~", resp.Summary.CostPerTon, 1e-6))

			w = do(http.MethodGet, "/api/v1/voyage-cost/"+resp.ID+"/scenarios?format=csv", "")
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Header().Get("Content-Type")).To(ContainSubstring("text/csv"))
			lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
			Expect(lines).To(HaveLen(12))
			Expect(lines[0]).To(Equal("profit_pct,freight_per_ton,revenue,tax,net_profit"))

			Expect(do(http.MethodGet, "/api/v1/voyage-cost/unknown/scenarios", "").Code).To(Equal(http.StatusNotFound))
		})

		It("rejects a partial split consumption override on a single-rate profile", func() {
			w := do(http.MethodPost, "/api/v1/voyage-cost", `{
  "vessel_file": "charter-07",
  "vessel": {"consumption": {"port": 30}},
  "route": {"laden_distance_nm": 500, "ballast_distance_nm": 500, "bunker_price": 15000},
  "cargo_tons": 7500
}`)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(w.Body.String()).To(ContainSubstring("INVALID_INPUT"))
			Expect(w.Body.String()).To(ContainSubstring("consumption"))
		})

		It("returns 404 for an unknown vessel profile", func() {
			w := do(http.MethodPost, "/api/v1/voyage-cost", `{"vessel_file": "ghost", "route": {}, "cargo_tons": 1}`)
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})

		It("ranks vessels and reports missing ones last", func() {
			Expect(do(http.MethodPut, "/api/v1/vessels/slow", strings.Replace(charterVessel, `"laden_speed_knots": 5`, `"laden_speed_knots": 4`, 1)).Code).
				To(Equal(http.StatusOK))

			w := do(http.MethodPost, "/api/v1/voyage-cost/compare", `{
  "route": {"laden_distance_nm": 500, "ballast_distance_nm": 500, "bunker_price": 15000},
  "cargo_tons": 7500,
  "vessels": ["slow", "ghost", "charter-07"]
}`)
			Expect(w.Code).To(Equal(http.StatusOK))

			var resp models.CompareResponse
			decode(w, &resp)
			Expect(resp.Rankings).To(HaveLen(3))
			Expect(resp.Rankings[0].VesselID).To(Equal("charter-07"))
			Expect(resp.Rankings[0].Rank).To(Equal(1))
			// 200h sailing at 100/h plus no port days, priced at 15000
			Expect(resp.Rankings[0].BunkerCost).To(BeNumerically("~", 200*100*15000, 1e-3))
			Expect(resp.Rankings[1].VesselID).To(Equal("slow"))
			Expect(resp.Rankings[2].VesselID).To(Equal("ghost"))
			Expect(resp.Rankings[2].Error).NotTo(BeEmpty())
		})
	})
})

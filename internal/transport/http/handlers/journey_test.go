package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"custoplan/internal/app/server"
	"custoplan/internal/ingest"
	"custoplan/internal/platform/config"
)

func writeFixtures(t *testing.T, dir string) (string, string) {
	t.Helper()

	workbook := excelize.NewFile()
	if err := workbook.SetSheetName("Sheet1", "EFETIVO"); err != nil {
		t.Fatalf("rename sheet: %v", err)
	}
	if _, err := workbook.NewSheet("TERCEIROS"); err != nil {
		t.Fatalf("new sheet: %v", err)
	}
	workerRows := [][]any{
		{"Obra", "Funcionário", "Função", "Tipo", "PRODUÇÃO", "REFLEXO S PRODUÇÃO", "Hora Extra 70% - Semana", "Hora Extra 70% - Sabado", "Repouso Remunerado", "Remuneração Líquida Folha", "Adiantamento", "Salário Base", "INSS"},
		{"Tower-1", "Ana", "Pedreira", "DIRETO", "1000", "200", "10", "5", "8", "3000", "-100", "2500", "275"},
		{"Tower-1", "Bia", "Pedreira", "DIRETO", "1000", "200", "0", "0", "0", "3000", "-100", "2500", "275"},
		{"Tower-2", "Caio", "Apontador", "INDIRETO", "0", "0", "12", "3", "8", "2800", "0", "2600", "250"},
	}
	for i, row := range workerRows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := workbook.SetSheetRow("EFETIVO", cell, &row); err != nil {
			t.Fatalf("write worker row: %v", err)
		}
	}
	thirdPartyRows := [][]any{
		{"Obra", "EMPRESA", "QUANTIDADE"},
		{"Tower-1", "Alfa Ltda", "5"},
		{"Tower-2", "Beta Ltda", "3"},
	}
	for i, row := range thirdPartyRows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := workbook.SetSheetRow("TERCEIROS", cell, &row); err != nil {
			t.Fatalf("write third-party row: %v", err)
		}
	}
	workforcePath := filepath.Join(dir, "efetivo.xlsx")
	if err := workbook.SaveAs(workforcePath); err != nil {
		t.Fatalf("save workforce fixture: %v", err)
	}

	prod := excelize.NewFile()
	prodRows := [][]any{
		{"Obra", "TIPO_OBRA", "SERVIÇO", "DATA", "PRODUTIVIDADE_PROF_DIAM2", "PRODUTIVIDADE_ORCADA_DIAM2"},
		{"Tower-1", "Residencial", "Alvenaria", "03/03/2025", "10", "12"},
		{"Tower-2", "Comercial", "Alvenaria", "10/04/2025", "20", "18"},
	}
	for i, row := range prodRows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := prod.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatalf("write productivity row: %v", err)
		}
	}
	productivityPath := filepath.Join(dir, "produtividade.xlsx")
	if err := prod.SaveAs(productivityPath); err != nil {
		t.Fatalf("save productivity fixture: %v", err)
	}
	return workforcePath, productivityPath
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	dir := t.TempDir()
	cfg := config.New()
	cfg.WorkforceWorkbook, cfg.ProductivityWorkbook = writeFixtures(t, dir)
	loader := ingest.NewLoader(cfg.WorkerSheet, cfg.ThirdPartySheet, cfg.EarningsCatalog, cfg.DeductionsCatalog)
	return server.NewRouter(cfg, loader)
}

func getJSON(t *testing.T, router http.Handler, url string) map[string]any {
	t.Helper()
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, url, nil))
	if recorder.Code != http.StatusOK {
		t.Fatalf("GET %s returned %d: %s", url, recorder.Code, recorder.Body.String())
	}
	var payload map[string]any
	if err := json.Unmarshal(recorder.Body.Bytes(), &payload); err != nil {
		t.Fatalf("invalid json from %s: %v", url, err)
	}
	if success, _ := payload["success"].(bool); !success {
		t.Fatalf("GET %s not successful: %s", url, recorder.Body.String())
	}
	return payload
}

func TestHeadcountJourney(t *testing.T) {
	router := newTestRouter(t)
	payload := getJSON(t, router, "/api/v1/workforce/headcount")
	data := payload["data"].(map[string]any)
	if data["direct"].(float64) != 2 || data["indirect"].(float64) != 1 {
		t.Fatalf("unexpected headcount: %v", data)
	}
	if data["thirdParty"].(float64) != 8 || data["total"].(float64) != 11 {
		t.Fatalf("unexpected totals: %v", data)
	}
}

func TestRankingJourney(t *testing.T) {
	router := newTestRouter(t)
	payload := getJSON(t, router, "/api/v1/workforce/ranking?metric=production&top=1")
	data := payload["data"].(map[string]any)
	rows := data["rows"].([]any)
	if len(rows) != 1 {
		t.Fatalf("expected truncation to 1 row, got %d", len(rows))
	}
	if data["total"].(float64) != 2000 {
		t.Fatalf("total must cover the whole filtered set, got %v", data["total"])
	}
	first := rows[0].(map[string]any)
	if first["productionBonus"].(float64) != 200 {
		t.Fatalf("production ranking must carry the bonus, got %v", first)
	}
}

func TestRankingRejectsUnknownMetric(t *testing.T) {
	router := newTestRouter(t)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/v1/workforce/ranking?metric=bogus", nil))
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", recorder.Code)
	}
}

func TestThirdPartySelectionJourney(t *testing.T) {
	router := newTestRouter(t)

	ranking := getJSON(t, router, "/api/v1/workforce/ranking?category=third_party&metric=production")
	data := ranking["data"].(map[string]any)
	if rows, ok := data["rows"].([]any); ok && len(rows) != 0 {
		t.Fatalf("third_party selection must empty the worker ranking, got %v", rows)
	}

	table := getJSON(t, router, "/api/v1/workforce/third-party?sites=Tower-1")
	groups := table["data"].([]any)
	if len(groups) != 1 {
		t.Fatalf("third-party table must stay populated, got %v", groups)
	}
	group := groups[0].(map[string]any)
	if group["company"].(string) != "Alfa Ltda" || group["quantity"].(float64) != 5 {
		t.Fatalf("unexpected group: %v", group)
	}
}

func TestWeightsJourney(t *testing.T) {
	router := newTestRouter(t)
	payload := getJSON(t, router, "/api/v1/workforce/weights?kind=production&sites=Tower-1")
	weights := payload["data"].([]any)
	if len(weights) != 2 {
		t.Fatalf("weights must cover every site, got %v", weights)
	}
	for _, entry := range weights {
		weight := entry.(map[string]any)
		selected := weight["isSelected"].(bool)
		if weight["site"].(string) == "Tower-1" && !selected {
			t.Fatalf("Tower-1 must be flagged selected: %v", weight)
		}
		if weight["site"].(string) == "Tower-2" && selected {
			t.Fatalf("Tower-2 must not be flagged selected: %v", weight)
		}
	}
}

func TestDecompositionJourney(t *testing.T) {
	router := newTestRouter(t)
	payload := getJSON(t, router, "/api/v1/workforce/decomposition")
	data := payload["data"].(map[string]any)
	earnings := data["totalEarnings"].(float64)
	deductions := data["totalDeductions"].(float64)
	if data["net"].(float64) != earnings-deductions {
		t.Fatalf("net law violated: %v", data)
	}
	if earnings == 0 || deductions == 0 {
		t.Fatalf("expected non-zero buckets from fixture: %v", data)
	}
}

func TestProductivityJourney(t *testing.T) {
	router := newTestRouter(t)
	payload := getJSON(t, router, "/api/v1/productivity?service=Alvenaria")
	data := payload["data"].(map[string]any)
	monthly := data["monthly"].([]any)
	if len(monthly) != 2 {
		t.Fatalf("expected 2 months, got %v", monthly)
	}
	first := monthly[0].(map[string]any)
	if first["month"].(string) != "Mar/25" {
		t.Fatalf("expected chronological order, got %v", monthly)
	}

	months := getJSON(t, router, "/api/v1/productivity/months")
	labels := months["data"].([]any)
	if len(labels) != 2 || labels[0].(string) != "Mar/25" {
		t.Fatalf("unexpected labels: %v", labels)
	}
}

func TestSummaryPDFJourney(t *testing.T) {
	router := newTestRouter(t)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/v1/workforce/summary.pdf?sites=Tower-1", nil))
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}
	if recorder.Header().Get("Content-Type") != "application/pdf" {
		t.Fatalf("unexpected content type %q", recorder.Header().Get("Content-Type"))
	}
	if recorder.Body.Len() == 0 {
		t.Fatal("expected pdf bytes")
	}
}

func TestHealthEndpoints(t *testing.T) {
	router := newTestRouter(t)
	for _, path := range []string{"/healthz", "/readyz", "/metrics"} {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, path, nil))
		if recorder.Code != http.StatusOK {
			t.Fatalf("GET %s returned %d", path, recorder.Code)
		}
	}
}

package ingest

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"custoplan/internal/domain/productivity"
	"custoplan/internal/domain/workforce"
)

// Canonical workbook columns. Lookups run through NormalizeHeader, so
// any accent/spacing variant of these resolves to the same column.
const (
	colSite             = "Obra"
	colName             = "Funcionário"
	colRole             = "Função"
	colCategory         = "Tipo"
	colProduction       = "PRODUÇÃO"
	colProductionBonus  = "REFLEXO S PRODUÇÃO"
	colOvertimeWeekday  = "Hora Extra 70% - Semana"
	colOvertimeSaturday = "Hora Extra 70% - Sabado"
	colPaidRest         = "Repouso Remunerado"
	colNetPay           = "Remuneração Líquida Folha"
	colAdvance          = "Adiantamento"

	colCompany  = "EMPRESA"
	colQuantity = "QUANTIDADE"

	colSiteType = "TIPO_OBRA"
	colService  = "SERVIÇO"
	colDate     = "DATA"
	colActual   = "PRODUTIVIDADE_PROF_DIAM2"
	colBudgeted = "PRODUTIVIDADE_ORCADA_DIAM2"
)

// Dataset is one parsed workforce workbook.
type Dataset struct {
	Workers    []workforce.Record
	ThirdParty []workforce.ThirdParty
}

// siteExcluded reports rows the source marks as unassigned. The sheets
// use the literal "0" as a parking site for rows without a project.
func siteExcluded(site string) bool {
	return site == "" || site == "0"
}

func parseWorkers(rows [][]string, earningsCatalog, deductionsCatalog []string) []workforce.Record {
	if len(rows) == 0 {
		return nil
	}
	index := indexColumns(rows[0])
	workers := make([]workforce.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		site, _ := index.cell(row, colSite)
		if siteExcluded(site) {
			continue
		}
		name, _ := index.cell(row, colName)
		role, _ := index.cell(row, colRole)
		marker, _ := index.cell(row, colCategory)

		record := workforce.Record{
			Site:       site,
			Name:       name,
			Role:       role,
			Category:   workforce.ParseCategory(marker),
			Earnings:   map[string]float64{},
			Deductions: map[string]float64{},
		}
		record.Production = numberAt(index, row, colProduction)
		record.ProductionBonus = numberAt(index, row, colProductionBonus)
		record.OvertimeWeekday = numberAt(index, row, colOvertimeWeekday)
		record.OvertimeSaturday = numberAt(index, row, colOvertimeSaturday)
		record.PaidRest = numberAt(index, row, colPaidRest)
		record.NetPay = numberAt(index, row, colNetPay)
		record.Advance = numberAt(index, row, colAdvance)

		for _, field := range earningsCatalog {
			if raw, ok := index.cell(row, field); ok {
				record.Earnings[field] = CoerceNumber(raw)
			}
		}
		for _, field := range deductionsCatalog {
			if raw, ok := index.cell(row, field); ok {
				record.Deductions[field] = CoerceNumber(raw)
			}
		}
		workers = append(workers, record)
	}
	return workers
}

func numberAt(index columnIndex, row []string, header string) float64 {
	raw, _ := index.cell(row, header)
	return CoerceNumber(raw)
}

func parseThirdParty(rows [][]string) []workforce.ThirdParty {
	if len(rows) == 0 {
		return nil
	}
	index := indexColumns(rows[0])
	out := make([]workforce.ThirdParty, 0, len(rows)-1)
	for _, row := range rows[1:] {
		site, _ := index.cell(row, colSite)
		if siteExcluded(site) {
			continue
		}
		company, _ := index.cell(row, colCompany)
		quantity, _ := index.cell(row, colQuantity)
		out = append(out, workforce.ThirdParty{
			Site:     site,
			Company:  company,
			Quantity: CoerceQuantity(quantity),
		})
	}
	return out
}

var dateLayouts = []string{"02/01/2006", "2006-01-02", "02-01-2006"}

func parseDate(raw string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

func parseProductivity(rows [][]string) []productivity.Record {
	if len(rows) == 0 {
		return nil
	}
	index := indexColumns(rows[0])
	out := make([]productivity.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		raw, _ := index.cell(row, colDate)
		date, ok := parseDate(raw)
		if !ok {
			// a row without a resolvable month cannot be bucketed
			continue
		}
		site, _ := index.cell(row, colSite)
		siteType, _ := index.cell(row, colSiteType)
		service, _ := index.cell(row, colService)
		out = append(out, productivity.Record{
			Site:        site,
			SiteType:    siteType,
			ServiceType: service,
			Date:        date,
			Actual:      numberAt(index, row, colActual),
			Budgeted:    numberAt(index, row, colBudgeted),
		})
	}
	return out
}

func parseWorkforceWorkbook(data []byte, workerSheet, thirdPartySheet string, earningsCatalog, deductionsCatalog []string) (*Dataset, error) {
	file, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open workforce workbook: %w", err)
	}
	defer file.Close()

	workerRows, err := file.GetRows(workerSheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", workerSheet, err)
	}
	thirdPartyRows, err := file.GetRows(thirdPartySheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", thirdPartySheet, err)
	}
	return &Dataset{
		Workers:    parseWorkers(workerRows, earningsCatalog, deductionsCatalog),
		ThirdParty: parseThirdParty(thirdPartyRows),
	}, nil
}

func parseProductivityWorkbook(data []byte) ([]productivity.Record, error) {
	file, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open productivity workbook: %w", err)
	}
	defer file.Close()

	rows, err := file.GetRows(file.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("read productivity sheet: %w", err)
	}
	return parseProductivity(rows), nil
}

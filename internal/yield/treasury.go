package yield

import (
	"context"
	"encoding/csv"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const (
	csvURLFmt = "https://home.treasury.gov/resource-center/data-chart-center/interest-rates/daily-treasury-rates.csv/%d/all?type=daily_treasury_yield_curve&field_tdr_date_value=%d&_format=csv"
	xmlURLFmt = "https://home.treasury.gov/resource-center/data-chart-center/interest-rates/pages/xml?data=daily_treasury_yield_curve&field_tdr_date_value=%d"
)

func fetchBody(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("treasury fetch: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("treasury: status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("treasury read body: %w", err)
	}
	return body, nil
}

// CSVProvider reads the daily treasury rates CSV and returns the most
// recent value of the requested tenor column (e.g. "2 Yr").
type CSVProvider struct {
	Client *http.Client
	Tenor  string
	url    string // test override
}

// NewCSVProvider creates a CSV provider for the given tenor column.
func NewCSVProvider(tenor string) *CSVProvider {
	return &CSVProvider{Client: newClient(), Tenor: tenor}
}

func (p *CSVProvider) Name() string { return "treasury-csv" }

func (p *CSVProvider) Rate(ctx context.Context) (float64, error) {
	url := p.url
	if url == "" {
		year := time.Now().UTC().Year()
		url = fmt.Sprintf(csvURLFmt, year, year)
	}
	body, err := fetchBody(ctx, p.Client, url)
	if err != nil {
		return 0, err
	}

	rows, err := csv.NewReader(strings.NewReader(string(body))).ReadAll()
	if err != nil {
		return 0, fmt.Errorf("treasury csv parse: %w", err)
	}
	if len(rows) < 2 {
		return 0, fmt.Errorf("treasury csv: no data rows")
	}

	col := -1
	for i, h := range rows[0] {
		if strings.EqualFold(strings.TrimSpace(h), p.Tenor) {
			col = i
			break
		}
	}
	if col < 0 {
		return 0, fmt.Errorf("treasury csv: column %q not found", p.Tenor)
	}

	// Rows are newest-first; take the first row with a parseable value.
	for _, row := range rows[1:] {
		if col >= len(row) {
			continue
		}
		if rate, err := strconv.ParseFloat(strings.TrimSpace(row[col]), 64); err == nil {
			return rate, nil
		}
	}
	return 0, fmt.Errorf("treasury csv: no parseable %q value", p.Tenor)
}

// XMLProvider reads the treasury yield-curve XML feed and returns the last
// entry's value for the requested element (e.g. "BC_2YEAR").
type XMLProvider struct {
	Client  *http.Client
	Element string
	url     string // test override
}

// NewXMLProvider creates an XML provider for the given curve element.
func NewXMLProvider(element string) *XMLProvider {
	return &XMLProvider{Client: newClient(), Element: element}
}

func (p *XMLProvider) Name() string { return "treasury-xml" }

func (p *XMLProvider) Rate(ctx context.Context) (float64, error) {
	url := p.url
	if url == "" {
		url = fmt.Sprintf(xmlURLFmt, time.Now().UTC().Year())
	}
	body, err := fetchBody(ctx, p.Client, url)
	if err != nil {
		return 0, err
	}

	// Stream the feed and keep the last matching element, which is the most
	// recent business day in this feed's ordering.
	dec := xml.NewDecoder(strings.NewReader(string(body)))
	var last string
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("treasury xml parse: %w", err)
		}
		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != p.Element {
			continue
		}
		var v string
		if err := dec.DecodeElement(&v, &start); err != nil {
			return 0, fmt.Errorf("treasury xml decode: %w", err)
		}
		last = strings.TrimSpace(v)
	}
	if last == "" {
		return 0, fmt.Errorf("treasury xml: element %q not found", p.Element)
	}
	rate, err := strconv.ParseFloat(last, 64)
	if err != nil {
		return 0, fmt.Errorf("treasury xml: parse %q: %w", last, err)
	}
	return rate, nil
}

package abaco

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/TiagoK-777/hass-abaco-finance/internal/jsonpath"
	"github.com/TiagoK-777/hass-abaco-finance/internal/model"
)

// maxPages caps cursor-following so a server that keeps answering
// has_more=true with a non-advancing cursor cannot loop forever.
const maxPages = 1000

const dateFormat = "2006-01-02"

// queryValues builds the wire query string from the non-empty filters.
func queryValues(q model.TransactionQuery) url.Values {
	values := url.Values{}
	if !q.StartDate.IsZero() {
		values.Set("start_date", q.StartDate.Format(dateFormat))
	}
	if !q.EndDate.IsZero() {
		values.Set("end_date", q.EndDate.Format(dateFormat))
	}
	if q.Status != "" {
		values.Set("status", string(q.Status))
	}
	if q.Type != "" {
		values.Set("type", string(q.Type))
	}
	pageSize := q.PageSize
	if pageSize <= 0 {
		pageSize = model.DefaultPageSize
	}
	values.Set("limit", strconv.Itoa(pageSize))
	return values
}

// page is one decoded page of the transactions listing.
type page struct {
	items      []any
	totalCount int
	hasMore    bool
	nextCursor string
}

// parsePage reads the pagination envelope out of a decoded body. The second
// return is false when the body is not a JSON object.
func parsePage(body any) (page, bool) {
	m, ok := body.(map[string]any)
	if !ok {
		return page{}, false
	}
	var p page
	if items, ok := m["items"].([]any); ok {
		p.items = items
	}
	if n, ok := jsonpath.AsFloat(m["total_count"]); ok {
		p.totalCount = int(n)
	}
	if b, ok := m["has_more"].(bool); ok {
		p.hasMore = b
	}
	if s, ok := m["next_cursor"].(string); ok {
		p.nextCursor = s
	}
	return p, true
}

// FetchTransactions fetches transactions matching the query, following the
// cursor chain page by page unless q.NoPaginate is set.
//
// Items keep their within-page order and pages are concatenated in cursor
// order. A failed or malformed page mid-sequence stops the loop without an
// error: the result holds everything gathered so far, HasMore is false, and
// PagesFetched counts only the pages that succeeded. Only a first-page
// failure returns an error.
func (c *Client) FetchTransactions(ctx context.Context, q model.TransactionQuery) (*model.TransactionResult, error) {
	values := queryValues(q)
	path := model.EndpointTransactions.Path()

	first, err := c.getJSON(ctx, path, values)
	if err != nil {
		return nil, err
	}

	if q.NoPaginate {
		return &model.TransactionResult{Raw: first, PagesFetched: 1}, nil
	}

	p, ok := parsePage(first)
	if !ok {
		// Not the pagination envelope; hand the body back untouched.
		return &model.TransactionResult{Raw: first, PagesFetched: 1}, nil
	}

	result := &model.TransactionResult{
		Aggregated:   true,
		Items:        p.items,
		TotalCount:   p.totalCount,
		PagesFetched: 1,
	}

	hasMore, cursor := p.hasMore, p.nextCursor
	for hasMore && cursor != "" && result.PagesFetched < maxPages {
		values.Set("cursor", cursor)
		body, err := c.getJSON(ctx, path, values)
		if err != nil {
			c.log.Warnf("transaction page %d failed, returning partial result: %v", result.PagesFetched+1, err)
			break
		}
		next, ok := parsePage(body)
		if !ok {
			c.log.Warnf("transaction page %d malformed, returning partial result", result.PagesFetched+1)
			break
		}
		result.Items = append(result.Items, next.items...)
		result.PagesFetched++
		hasMore, cursor = next.hasMore, next.nextCursor
	}

	result.HasMore = false
	return result, nil
}

// CreateTransaction posts a new transaction. Unlike the read paths it never
// returns a Go error: the outcome, including transport failures and non-201
// statuses, is reported through the CreateResult value.
func (c *Client) CreateTransaction(ctx context.Context, payload map[string]any) model.CreateResult {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	encoded, err := json.Marshal(payload)
	if err != nil {
		return model.CreateResult{Success: false, Error: fmt.Sprintf("encoding payload: %v", err)}
	}

	u := c.baseURL + model.EndpointTransactions.Path()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(encoded))
	if err != nil {
		return model.CreateResult{Success: false, Error: fmt.Sprintf("creating request: %v", err)}
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return model.CreateResult{Success: false, Error: fmt.Sprintf("connection error: %v", err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return model.CreateResult{Success: false, Error: fmt.Sprintf("reading response: %v", err)}
	}

	if resp.StatusCode != http.StatusCreated {
		return model.CreateResult{Success: false, Status: resp.StatusCode, Error: string(body)}
	}

	var data any
	if err := json.Unmarshal(body, &data); err != nil {
		return model.CreateResult{Success: false, Status: resp.StatusCode, Error: fmt.Sprintf("decoding response: %v", err)}
	}

	result := model.CreateResult{Success: true, Data: data}
	if id, ok := jsonpath.Resolve(data, "id"); ok {
		result.ID = fmt.Sprint(id)
	}
	c.log.Infof("created transaction %s", result.ID)
	return result
}

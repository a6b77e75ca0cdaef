package pagespeed

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mstancik/leadgen-backend/internal/entity"
	"github.com/mstancik/leadgen-backend/internal/infra/http/middleware"
)

const defaultBaseURL = "https://www.googleapis.com/pagespeedonline/v5/runPagespeed"

// psiTimeout caps the whole PSI round trip; the audit never waits longer
// than this for the performance section.
const psiTimeout = 10 * time.Second

type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: psiTimeout},
	}
}

// Audit fetches the mobile performance score for a URL. Every failure
// mode (HTTP error, quota response, malformed payload, timeout) is soft:
// the caller gets nil and the audit continues without the section.
func (c *Client) Audit(ctx context.Context, rawURL string) *entity.PageSpeedMetrics {
	target := rawURL
	if !strings.HasPrefix(target, "http") {
		target = "https://" + target
	}

	endpoint := fmt.Sprintf("%s?url=%s&strategy=mobile", c.baseURL, url.QueryEscape(target))
	if c.apiKey != "" {
		endpoint += "&key=" + c.apiKey
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil
	}

	resp, err := c.http.Do(req)
	if err != nil {
		logrus.WithField("url", target).Debugf("pagespeed request failed: %v", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Public PSI quota bites often; stay quiet and move on.
		logrus.WithField("url", target).Debugf("pagespeed returned status %d", resp.StatusCode)
		middleware.RecordIntegrationError("pagespeed")
		return nil
	}

	var data psiResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		middleware.RecordIntegrationError("pagespeed")
		return nil
	}
	if data.Error != nil || data.LighthouseResult == nil {
		return nil
	}

	return &entity.PageSpeedMetrics{
		Performance: int(math.Round(data.LighthouseResult.Categories.Performance.Score * 100)),
		FCP:         data.LighthouseResult.Audits["first-contentful-paint"].DisplayValue,
		LCP:         data.LighthouseResult.Audits["largest-contentful-paint"].DisplayValue,
	}
}

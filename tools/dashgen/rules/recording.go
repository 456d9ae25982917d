package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name:   "ptm-recording-rules",
			Labels: ruleLabels,
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "ptm-recording",
					Rules: []Rule{
						{
							Record: "ptm:http_requests:rate5m",
							Expr:   `sum(rate(ptm_http_requests_total[5m]))`,
						},
						{
							Record: "ptm:http_errors:rate5m",
							Expr:   `sum(rate(ptm_http_requests_total{status=~"5.."}[5m]))`,
						},
						{
							Record: "ptm:scan_due:rate5m",
							Expr:   `sum(rate(ptm_scan_due_triggers_total[5m]))`,
						},
						{
							Record: "ptm:scan_enqueued:rate5m",
							Expr:   `sum(rate(ptm_scan_enqueued_total[5m]))`,
						},
						{
							Record: "ptm:scan_errors:rate5m",
							Expr:   `sum(rate(ptm_scan_errors_total[5m]))`,
						},
						{
							Record: "ptm:worker_jobs:rate5m",
							Expr:   `sum(rate(ptm_worker_jobs_total[5m])) by (outcome)`,
						},
						{
							Record: "ptm:resolver_errors:rate5m",
							Expr:   `sum(rate(ptm_resolver_errors_total[5m])) by (resolver)`,
						},
						{
							Record: "ptm:notifications_created:rate5m",
							Expr:   `sum(rate(ptm_notifications_created_total[5m]))`,
						},
					},
				},
			},
		},
	}
}

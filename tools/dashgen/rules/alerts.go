package rules

func alert(name, expr, forDur, severity, summary, description string) Rule {
	return Rule{
		Alert:       name,
		Expr:        expr,
		For:         forDur,
		Labels:      map[string]string{"severity": severity},
		Annotations: map[string]string{"summary": summary, "description": description},
	}
}

// AlertRules returns a PrometheusRule CR containing alert rules for
// price-trigger-monitor operational monitoring.
func AlertRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name:   "ptm-alerts",
			Labels: ruleLabels,
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "ptm-alerts",
					Rules: []Rule{
						alert("PtmDown",
							`absent(up{job="trigger-monitor"})`, "2m", "critical",
							"Price trigger monitor is down",
							"The trigger-monitor job has been absent for more than 2 minutes."),
						alert("PtmReadinessDown",
							`ptm_readyz_up == 0`, "2m", "critical",
							"Price trigger monitor readiness check is failing",
							"The store or queue has been unreachable for more than 2 minutes."),
						alert("PtmHighErrorRate",
							`ptm:http_errors:rate5m / ptm:http_requests:rate5m > 0.05`, "5m", "warning",
							"High HTTP error rate on the price trigger monitor",
							"More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes."),
						alert("PtmScanErrors",
							`ptm:scan_errors:rate5m > 0`, "10m", "warning",
							"Scans are failing to claim or enqueue triggers",
							"Due triggers have been failing to claim or enqueue for more than 10 minutes."),
						alert("PtmWorkerSystemicFailure",
							`increase(ptm_worker_jobs_total{outcome="systemic_failure"}[5m]) > 0`, "0m", "critical",
							"A worker stopped on a store or queue failure",
							"A worker hit a systemic failure and exited; queued checks are not being processed."),
						alert("PtmResolverErrorsHigh",
							`sum(ptm:resolver_errors:rate5m) / sum(ptm:worker_jobs:rate5m) > 0.2`, "15m", "warning",
							"Price lookups are failing",
							"More than 20% of price checks have failed in the resolver for 15 minutes."),
						alert("PtmQueueBacklog",
							`ptm_queue_jobs{status="pending"} > 1000`, "15m", "warning",
							"Price check backlog is growing",
							"More than 1000 jobs have been pending for 15 minutes; workers are not keeping up."),
						alert("PtmNotificationFailures",
							`increase(ptm_notification_failures_total[5m]) > 0`, "1m", "warning",
							"Chat notification pushes are failing",
							"One or more Discord or Slack pushes failed. Alerts are still recorded in the store."),
					},
				},
			},
		},
	}
}

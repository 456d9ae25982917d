// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/donaldgifford/price-trigger-monitor/tools/dashgen/panels"
)

// UID is the Grafana UID of the overview dashboard.
const UID = "ptm-overview"

// BuildOverview constructs the trigger monitor overview dashboard.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("Price Trigger Monitor").
		Uid(UID).
		Tags([]string{"ptm", "price-trigger-monitor"}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.HealthzStat()).
		WithPanel(panels.ReadyzStat()).
		WithPanel(panels.BacklogStat()).
		WithPanel(panels.UptimeStat()))

	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()))

	b.WithRow(dashboard.NewRowBuilder("Scanner").
		WithPanel(panels.ScanThroughput()).
		WithPanel(panels.ScanDuration()).
		WithPanel(panels.ScanProblems()))

	b.WithRow(dashboard.NewRowBuilder("Queue").
		WithPanel(panels.QueueDepth()).
		WithPanel(panels.LeaseExpiries()))

	b.WithRow(dashboard.NewRowBuilder("Worker").
		WithPanel(panels.JobOutcomes()).
		WithPanel(panels.JobDuration()).
		WithPanel(panels.ResolverLatency()).
		WithPanel(panels.ResolverFailures()))

	b.WithRow(dashboard.NewRowBuilder("Alerts").
		WithPanel(panels.NotificationsRate()).
		WithPanel(panels.NotificationLatency()).
		WithPanel(panels.NotificationFailures()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}

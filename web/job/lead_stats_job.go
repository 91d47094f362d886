package job

import (
	"lead-ui/logger"
	"lead-ui/util/common"
	"lead-ui/web/service"
)

// LeadStatsJob logs the size of the lead pool so operators can follow growth
// from the log file.
type LeadStatsJob struct {
	leadService service.LeadService
}

func NewLeadStatsJob() *LeadStatsJob {
	return new(LeadStatsJob)
}

func (j *LeadStatsJob) Run() {
	defer common.Recover("lead stats job")

	count, err := j.leadService.CountLeads()
	if err != nil {
		logger.Warning("lead stats job failed:", err)
		return
	}
	logger.Infof("lead pool size: %d", count)
}

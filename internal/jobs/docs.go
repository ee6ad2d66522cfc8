// Package jobs provides scheduled background tasks for the restaurant service.
//
// Jobs are driven by github.com/robfig/cron/v3 with the seconds-enabled parser,
// so schedules have six fields ("0 * * * * *" runs at the top of every minute).
//
// # Available Jobs
//
//   - OrderBacklogJob logs the number of orders per status and the open backlog
//     (every order not yet DELIVERED). Its schedule comes from
//     BACKLOG_REPORT_SCHEDULE and defaults to DefaultBacklogSchedule.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(countHandler, cfg.BacklogReportSchedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// Failed reports are logged and the job keeps its schedule.
package jobs

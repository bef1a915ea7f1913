// Package jobs provides scheduled background tasks for the food-ordering
// service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. OrderDigestJob - Runs every minute to log a tally of orders per status,
// giving operators a cheap view of the order pipeline without a metrics
// stack.
package jobs

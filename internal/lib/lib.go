// Package lib holds modules that do not fit strictly into other layers:
// background jobs (Asynq on Redis), email (Resend) and small utilities.
package lib

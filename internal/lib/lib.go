// Package lib groups supporting code that is not a layer of its own:
// background jobs (Asynq over Redis) and transactional email (Resend).
package lib

// Package jobs implements background job processing for the club API.
//
// The jobs package contains scheduled tasks that run independently of
// HTTP request handling.
//
// # Job Types
//
// Available background jobs:
//
//   - ChatRetention: hourly pruning of chat messages outside the window
//
// # Lifecycle
//
// Jobs expose Start and Stop and shut down cleanly:
//
//	job := jobs.NewChatRetention(chatService, time.Hour)
//	job.Start()
//	defer job.Stop()
//
// # Error Handling
//
// Jobs log errors but don't crash the application.
package jobs

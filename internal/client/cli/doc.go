// Package cli provides the interactive HealthGuard terminal dashboard.
//
// It plays the presentation layer for the core: it prompts for credentials,
// asks the access gate before showing any view, renders alerts and follows
// navigation requests published on the notify bus.
//
// Commands
//
//	help                 show available commands
//	login | logout       start or end the session
//	whoami               show the signed-in profile
//	open <view>          open dashboard, profile, patients or admin
//	vitals               record a set of vital signs
//	meds                 show today's medications
//	take <id>            mark a medication as taken
//	emergency            notify emergency contacts
//	exit | quit          leave the program
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli

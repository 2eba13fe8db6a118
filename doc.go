// Package watchdog implements a client for the Randlabs.IO server watchdog
// service. It can deliver log-level notifications to a channel and register
// processes so the server emits an alert if they terminate abnormally.
//
// A client is bound to an immutable configuration at creation:
//
//	client, err := watchdog.Create(watchdog.Options{
//		Host:           "watchdog.example.com",
//		Port:           8004,
//		ApiKey:         "some-api-key",
//		DefaultChannel: "ops",
//	})
//	if err != nil {
//		// ...
//	}
//	_ = client.Error("database connection lost", "")
//	_ = client.ProcessWatch(0, "", "error", "")
//
// Each operation performs exactly one HTTP request with the configured
// timeout. There are no retries and nothing is ever logged internally;
// failures always surface to the caller.
package watchdog

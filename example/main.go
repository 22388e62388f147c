package main

import (
	"github.com/siherrmann/jobSchema"
	"github.com/siherrmann/jobSchema/helper"
)

// main is the entry point of the service. It starts the Echo server with
// the port from the environment variable JOBS_PORT.
func main() {
	jobSchema.ManagerServer(helper.GetEnvOrDefault("JOBS_PORT", "3000"))
}

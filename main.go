// Authgate is a JWT authentication and role authorization gateway. It verifies
// bearer credentials on every protected route and enforces per-route role
// allow-sets fixed at registration time.
package main

import (
	"context"
	"time"

	"github.com/adiwira/authgate/internal/app"
)

func main() {
	application := app.New()    // Initialize the application
	wait := application.Start() // Start the application and wait for the termination signal
	<-wait                      // Wait for the application to receive a termination signal
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	application.Stop(ctx) // Stop the application gracefully
}

package bootstrap

import (
	"errors"
	"fmt"
	"net"
	"strings"
	"syscall"
)

// ClassifyConnectionError provides specific error messages based on the
// type of connection failure, so the startup banner tells the operator
// what to do instead of dumping a raw dial error.
func ClassifyConnectionError(err error, addr string) string {
	if err == nil {
		return ""
	}

	errStr := err.Error()

	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return fmt.Sprintf("Connection to MySQL at %s timed out.\n"+
				"  Possible causes:\n"+
				"  - MySQL is starting up (wait and retry)\n"+
				"  - Network latency or firewall blocking the connection\n"+
				"  Remediation:\n"+
				"  - Check if MySQL is running: docker ps | grep mysql\n"+
				"  - Verify network connectivity: nc -zv %s", addr, addr)
		}
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		if opErr.Op == "dial" && errors.Is(opErr.Err, syscall.ECONNREFUSED) {
			return fmt.Sprintf("Connection refused by MySQL at %s.\n"+
				"  This usually means MySQL is not running.\n"+
				"  Remediation:\n"+
				"  - Start MySQL: docker compose up -d mysql\n"+
				"  - Verify DB_HOST and DB_PORT are correct", addr)
		}
	}

	if containsIgnoreCase(errStr, "connection refused") || containsIgnoreCase(errStr, "actively refused") {
		return fmt.Sprintf("Connection refused by MySQL at %s.\n"+
			"  This usually means MySQL is not running.\n"+
			"  Remediation:\n"+
			"  - Start MySQL: docker compose up -d mysql\n"+
			"  - Verify DB_HOST and DB_PORT are correct", addr)
	}

	if containsIgnoreCase(errStr, "no such host") || containsIgnoreCase(errStr, "lookup") {
		return fmt.Sprintf("Cannot resolve hostname in MySQL address %s.\n"+
			"  Remediation:\n"+
			"  - Verify DB_HOST is correct\n"+
			"  - Check DNS configuration\n"+
			"  - Try using IP address (127.0.0.1) instead of hostname", addr)
	}

	if containsIgnoreCase(errStr, "access denied") || containsIgnoreCase(errStr, "authentication") {
		return fmt.Sprintf("Authentication failed for MySQL at %s.\n"+
			"  Remediation:\n"+
			"  - Verify DB_USER and DB_PASSWORD\n"+
			"  - Check the user has access to the configured database", addr)
	}

	if containsIgnoreCase(errStr, "unknown database") {
		return fmt.Sprintf("The configured database does not exist on MySQL at %s.\n"+
			"  Remediation:\n"+
			"  - Verify DB_NAME\n"+
			"  - Create the schema before starting the server", addr)
	}

	return fmt.Sprintf("Failed to connect to MySQL at %s: %v\n"+
		"  Remediation:\n"+
		"  - Ensure MySQL is running and accessible\n"+
		"  - Check DB_HOST, DB_PORT, DB_USER, DB_PASSWORD and DB_NAME\n"+
		"  - Verify network connectivity", addr, err)
}

func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// Command verify checks a deployment's configuration: environment variables,
// database connectivity, table presence and a demo sign-in against the
// running API. It prints pass/fail/warn lines and exits informationally; it
// is a diagnostic, not part of the runtime system.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

const (
	colorGreen  = "\x1b[32m"
	colorRed    = "\x1b[31m"
	colorYellow = "\x1b[33m"
	colorBlue   = "\x1b[34m"
	colorBold   = "\x1b[1m"
	colorReset  = "\x1b[0m"
)

func logSuccess(format string, args ...any) {
	fmt.Printf(colorGreen+"✅ "+format+colorReset+"\n", args...)
}

func logError(format string, args ...any) {
	fmt.Printf(colorRed+"❌ "+format+colorReset+"\n", args...)
}

func logWarning(format string, args ...any) {
	fmt.Printf(colorYellow+"⚠️  "+format+colorReset+"\n", args...)
}

func logInfo(format string, args ...any) {
	fmt.Printf(colorBlue+"ℹ️  "+format+colorReset+"\n", args...)
}

func logHeader(title string) {
	fmt.Println()
	fmt.Println(colorBold + colorBlue + "🔍 " + title + colorReset)
	fmt.Println(colorBlue + strings.Repeat("=", 50) + colorReset)
}

// checkEnv verifies a variable is set to something other than a placeholder.
func checkEnv(key string) bool {
	value := os.Getenv(key)
	if value == "" || strings.HasPrefix(value, "your-") {
		logError("%s not configured in environment or .env file", key)
		return false
	}
	logSuccess("%s configured", key)
	return true
}

func main() {
	if err := godotenv.Load(); err != nil {
		logInfo("No .env file found, reading configuration from the environment")
	}

	ok := true

	logHeader("Environment Configuration")
	for _, key := range []string{"DB_URL", "JWT_SECRET", "NOTIFY_FUNCTIONS_URL", "NOTIFY_API_KEY"} {
		if !checkEnv(key) {
			ok = false
		}
	}
	if !ok {
		logInfo("Fix the configuration above and re-run this check.")
		os.Exit(1)
	}

	logHeader("Database Connection")
	db, err := gorm.Open(mysql.Open(os.Getenv("DB_URL")), &gorm.Config{})
	if err != nil {
		logError("Could not connect to database: %v", err)
		os.Exit(1)
	}
	logSuccess("Connected to database")

	for _, table := range []string{"desserts", "orders", "order_items", "users"} {
		if db.Migrator().HasTable(table) {
			logSuccess("Table %q present", table)
		} else {
			logError("Table %q missing - has the API synced the schema?", table)
			ok = false
		}
	}

	var dessertCount int64
	if err := db.Table("desserts").Count(&dessertCount).Error; err == nil {
		if dessertCount == 0 {
			logWarning("Catalog is empty - the storefront will have nothing to sell")
		} else {
			logInfo("Catalog holds %d desserts", dessertCount)
		}
	}

	logHeader("API Sign-In")
	apiURL := os.Getenv("API_URL")
	if apiURL == "" {
		logWarning("API_URL not set, skipping sign-in check")
	} else {
		client := resty.New().SetTimeout(10 * time.Second)
		resp, err := client.R().
			SetHeader("Content-Type", "application/json").
			SetBody(map[string]string{
				"email":    os.Getenv("DEMO_ADMIN_EMAIL"),
				"password": os.Getenv("DEMO_ADMIN_PASSWORD"),
			}).
			Post(apiURL + "/auth/login")
		switch {
		case err != nil:
			logError("Sign-in request failed: %v", err)
			ok = false
		case resp.IsError():
			logError("Sign-in rejected with status %d: %s", resp.StatusCode(), resp.String())
			ok = false
		default:
			logSuccess("Demo admin sign-in succeeded")
		}
	}

	logHeader("Notification Functions")
	client := resty.New().SetTimeout(10 * time.Second)
	resp, err := client.R().
		SetHeader("Authorization", "Bearer "+os.Getenv("NOTIFY_API_KEY")).
		Get(os.Getenv("NOTIFY_FUNCTIONS_URL"))
	switch {
	case err != nil:
		logWarning("Notification endpoint unreachable: %v", err)
	case resp.StatusCode() >= 500:
		logWarning("Notification endpoint returned status %d", resp.StatusCode())
	default:
		logSuccess("Notification endpoint reachable")
	}

	fmt.Println()
	if ok {
		logSuccess("Setup verification finished - all checks passed")
	} else {
		logWarning("Setup verification finished with failures, see above")
	}
}

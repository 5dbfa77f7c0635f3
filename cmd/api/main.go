package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	"adspend_analyst/pkg/api/analysis"
	"adspend_analyst/pkg/api/reports"
	"adspend_analyst/pkg/core/agent"
	"adspend_analyst/pkg/core/history"
	"adspend_analyst/pkg/core/prompt"
	"adspend_analyst/pkg/core/session"
)

func main() {
	// Load environment variables
	godotenv.Load()

	fmt.Printf("[PROMPT] %d prompts registered\n", prompt.Get().Count())

	// Initialize manager from config
	configData, _ := os.ReadFile("config/models.yaml")
	var agentCfg agent.Config
	yaml.Unmarshal(configData, &agentCfg)
	agentMgr := agent.NewManager(agentCfg)
	fmt.Printf("[AGENT] Active provider: %s\n", agentMgr.GetActiveProvider())

	// History log: Postgres when DATABASE_URL is set, local file otherwise.
	var log history.Log
	if os.Getenv("DATABASE_URL") != "" {
		if err := history.InitDB(context.Background()); err != nil {
			fmt.Printf("[FATAL] Database init failed: %v\n", err)
			os.Exit(1)
		}
		defer history.Close()
		log = history.NewPGLog(nil)
		fmt.Println("[HISTORY] Using Postgres history log")
	} else {
		log = history.NewFileLog("")
		fmt.Println("[HISTORY] DATABASE_URL not set, using local file history log")
	}

	sess := session.NewSession(agentMgr, log)

	// Analysis endpoints
	analysis.InitHandler(sess)
	http.HandleFunc("/api/analysis/run", analysis.HandleRun)
	http.HandleFunc("/api/analysis/current", analysis.HandleCurrent)

	// Report import/export, history and view endpoints
	reports.InitHandler(sess)
	http.HandleFunc("/api/report/import", reports.HandleImport)
	http.HandleFunc("/api/report/export", reports.HandleExport)
	http.HandleFunc("/api/history", reports.HandleHistory)
	http.HandleFunc("/api/history/restore", reports.HandleRestore)
	http.HandleFunc("/api/view/hidden", reports.HandleHiddenView)

	fmt.Println("API server starting on :8080...")
	fmt.Println("  - POST   /api/analysis/run")
	fmt.Println("  - GET    /api/analysis/current")
	fmt.Println("  - POST   /api/report/import")
	fmt.Println("  - GET    /api/report/export?format=json|html")
	fmt.Println("  - GET    /api/history")
	fmt.Println("  - DELETE /api/history?id=...")
	fmt.Println("  - POST   /api/history/restore")
	fmt.Println("  - POST   /api/view/hidden")

	if err := http.ListenAndServe(":8080", nil); err != nil {
		fmt.Printf("[FATAL] Server failed to start: %v\n", err)
		os.Exit(1)
	}
}

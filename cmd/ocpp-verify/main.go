package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/charging-platform/ocpp-codec/internal/config"
	"github.com/charging-platform/ocpp-codec/internal/logger"
	"github.com/charging-platform/ocpp-codec/internal/metrics"
	"github.com/charging-platform/ocpp-codec/internal/verify"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ocpp-verify 回放按行分隔的OCPP-J帧，对每帧执行解码-重编码比对。
// 输入来自文件参数或标准输入，以#开头的行与空行跳过。
func main() {
	configFile := flag.String("config", "", "path to config file")
	flag.Parse()

	// 1. 加载配置
	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. 初始化日志
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
		Async:  cfg.Log.Async,
	})
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	// 3. 打开输入
	input := os.Stdin
	if flag.NArg() > 0 {
		file, err := os.Open(flag.Arg(0))
		if err != nil {
			log.Fatalf("Failed to open input file: %v", err)
		}
		defer file.Close()
		input = file
	}

	// 4. 启动监控服务器
	if cfg.Metrics.Enabled {
		metrics.RegisterMetrics()
		go startMetricsServer(cfg.GetMetricsAddr(), log)
		log.Infof("Metrics server starting on %s", cfg.GetMetricsAddr())
	}

	// 5. 回放输入流
	verifier := verify.New(verify.Config{
		Direction: verify.Direction(cfg.Verify.Direction),
		Strict:    cfg.Verify.Strict,
	}, log)
	log.Infof("Verifier initialized for %s direction", cfg.Verify.Direction)

	scanner := bufio.NewScanner(input)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		outcome := verifier.VerifyLine(line)
		if outcome != verify.OutcomeOK && cfg.Verify.FailFast {
			log.Errorf("Line %d: %s, aborting", lineNo, outcome)
			os.Exit(1)
		}
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("Failed to read input: %v", err)
	}

	// 6. 输出统计
	stats := verifier.Stats()
	log.Infof("Verification complete - Total: %d, OK: %d, Mismatched: %d, Invalid: %d, Unmatched: %d, Skipped: %d",
		stats.Total, stats.OK, stats.Mismatched, stats.Invalid, stats.Unmatched, stats.Skipped)

	if cfg.Verify.ReportPath != "" {
		if err := writeReport(cfg.Verify.ReportPath, stats); err != nil {
			log.Errorf("Failed to write report: %v", err)
		} else {
			log.Infof("Report written to %s", cfg.Verify.ReportPath)
		}
	}

	if stats.Mismatched > 0 || stats.Invalid > 0 {
		os.Exit(1)
	}
}

// writeReport 将统计落盘为JSON
func writeReport(path string, stats verify.Stats) error {
	data, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// startMetricsServer 启动监控服务器
func startMetricsServer(addr string, log *logger.Logger) {
	http.Handle("/metrics", promhttp.Handler())
	if err := http.ListenAndServe(addr, nil); err != nil {
		log.Errorf("Metrics server failed: %v", err)
	}
}

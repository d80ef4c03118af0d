package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"ofs-panel/config"
	"ofs-panel/database"
	"ofs-panel/logger"
	"ofs-panel/web"
	"ofs-panel/web/global"
	"ofs-panel/web/service"

	"github.com/joho/godotenv"
	"github.com/op/go-logging"
)

func runWebServer() {
	log.Printf("%v %v", config.GetName(), config.GetVersion())

	switch config.GetLogLevel() {
	case config.Debug:
		logger.InitLogger(logging.DEBUG)
	case config.Info:
		logger.InitLogger(logging.INFO)
	case config.Notice:
		logger.InitLogger(logging.NOTICE)
	case config.Warn:
		logger.InitLogger(logging.WARNING)
	case config.Error:
		logger.InitLogger(logging.ERROR)
	default:
		log.Fatal("unknown log level:", config.GetLogLevel())
	}

	err := database.InitDB(config.GetDBPath())
	if err != nil {
		log.Fatal(err)
	}

	server := web.NewServer()
	global.SetWebServer(server)
	err = server.Start()
	if err != nil {
		log.Println(err)
		return
	}

	sigCh := make(chan os.Signal, 1)
	// Trap shutdown signals
	signal.Notify(sigCh, syscall.SIGHUP, syscall.SIGTERM)
	for {
		sig := <-sigCh

		switch sig {
		case syscall.SIGHUP:
			err := server.Stop()
			if err != nil {
				logger.Warning("stop server err:", err)
			}
			server = web.NewServer()
			global.SetWebServer(server)
			err = server.Start()
			if err != nil {
				log.Println(err)
				return
			}
		default:
			if err := server.Stop(); err != nil {
				logger.Warning("stop server err:", err)
			}
			if err := database.CloseDB(); err != nil {
				logger.Warning("close database err:", err)
			}
			logger.CloseLogger()
			return
		}
	}
}

func showSetting(show bool) {
	if !show {
		return
	}
	settingService := service.SettingService{}
	port, err := settingService.GetPort()
	if err != nil {
		fmt.Println("get current port failed, error info:", err)
	}
	fmt.Println("current panel settings as follows:")
	fmt.Println("port:", port)
}

func updateSetting(port int, tgBotToken string, tgBotChatId string, enableTgBot bool) {
	err := database.InitDB(config.GetDBPath())
	if err != nil {
		fmt.Println("database init failed:", err)
		return
	}

	settingService := service.SettingService{}
	if port > 0 {
		if err := settingService.SetPort(port); err != nil {
			fmt.Println("set port failed:", err)
		} else {
			fmt.Printf("set port %v success\n", port)
		}
	}
	if tgBotToken != "" {
		if err := settingService.SetTgBotToken(tgBotToken); err != nil {
			fmt.Println("set telegram bot token failed:", err)
		} else {
			fmt.Println("set telegram bot token success")
		}
	}
	if tgBotChatId != "" {
		if err := settingService.SetTgBotChatId(tgBotChatId); err != nil {
			fmt.Println("set telegram bot chat id failed:", err)
		} else {
			fmt.Println("set telegram bot chat id success")
		}
	}
	if enableTgBot {
		if err := settingService.SetTgbotEnabled(true); err != nil {
			fmt.Println("enable telegram bot failed:", err)
		} else {
			fmt.Println("enable telegram bot success")
		}
	}
}

func main() {
	// .env is optional; environment variables win either way.
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		runWebServer()
		return
	}

	var showVersion bool
	flag.BoolVar(&showVersion, "v", false, "show version")

	runCmd := flag.NewFlagSet("run", flag.ExitOnError)

	settingCmd := flag.NewFlagSet("setting", flag.ExitOnError)
	var port int
	var show bool
	var tgBotToken string
	var tgBotChatId string
	var enableTgBot bool
	settingCmd.BoolVar(&show, "show", false, "show current settings")
	settingCmd.IntVar(&port, "port", 0, "set panel port")
	settingCmd.StringVar(&tgBotToken, "tgbottoken", "", "set telegram bot token")
	settingCmd.StringVar(&tgBotChatId, "tgbotchatid", "", "set telegram bot chat id")
	settingCmd.BoolVar(&enableTgBot, "enabletgbot", false, "enable telegram bot notifications")

	flag.Usage = func() {
		fmt.Println("Usage:")
		fmt.Println("    run            run the web panel")
		fmt.Println("    setting        set panel settings")
	}

	flag.Parse()
	if showVersion {
		fmt.Println(config.GetVersion())
		return
	}

	switch os.Args[1] {
	case "run":
		runCmd.Parse(os.Args[2:])
		runWebServer()
	case "setting":
		settingCmd.Parse(os.Args[2:])
		if show {
			err := database.InitDB(config.GetDBPath())
			if err != nil {
				fmt.Println("database init failed:", err)
				return
			}
			showSetting(show)
			return
		}
		updateSetting(port, tgBotToken, tgBotChatId, enableTgBot)
	default:
		fmt.Println("invalid subcommand")
		flag.Usage()
	}
}

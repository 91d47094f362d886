package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"lead-ui/config"
	"lead-ui/database"
	"lead-ui/logger"
	"lead-ui/web"
	"lead-ui/web/service"

	json "github.com/goccy/go-json"
	"github.com/joho/godotenv"
	"github.com/op/go-logging"
	"github.com/spf13/cobra"
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
	err = server.Start()
	if err != nil {
		log.Println(err)
		return
	}

	sigCh := make(chan os.Signal, 1)
	// Trap shutdown signals
	signal.Notify(sigCh, syscall.SIGHUP, syscall.SIGTERM, syscall.SIGINT)
	for {
		sig := <-sigCh

		switch sig {
		case syscall.SIGHUP:
			err := server.Stop()
			if err != nil {
				logger.Warning("stop server err:", err)
			}
			server = web.NewServer()
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
				logger.Warning("close db err:", err)
			}
			logger.CloseLogger()
			return
		}
	}
}

func migrateDB() {
	err := database.InitDB(config.GetDBPath())
	if err != nil {
		fmt.Println(err)
		return
	}
	defer database.CloseDB()
	fmt.Println("migration done")
}

func resetSetting() {
	err := database.InitDB(config.GetDBPath())
	if err != nil {
		fmt.Println(err)
		return
	}
	defer database.CloseDB()

	settingService := service.SettingService{}
	err = settingService.ResetSettings()
	if err != nil {
		fmt.Println("reset setting failed:", err)
	} else {
		fmt.Println("reset setting success")
	}
}

func showSetting() {
	err := database.InitDB(config.GetDBPath())
	if err != nil {
		fmt.Println(err)
		return
	}
	defer database.CloseDB()

	settingService := service.SettingService{}
	allSetting, err := settingService.GetAllSetting()
	if err != nil {
		fmt.Println("get settings failed:", err)
		return
	}
	userService := service.UserService{}
	userModel, err := userService.GetFirstUser()
	if err != nil {
		fmt.Println("get current user info failed:", err)
		return
	}

	out, err := json.MarshalIndent(allSetting, "", "  ")
	if err != nil {
		fmt.Println("marshal settings failed:", err)
		return
	}
	fmt.Println("current username:", userModel.Username)
	fmt.Println("current panel settings:")
	fmt.Println(string(out))
}

func updateUser(username string, password string) {
	err := database.InitDB(config.GetDBPath())
	if err != nil {
		fmt.Println(err)
		return
	}
	defer database.CloseDB()

	userService := service.UserService{}
	err = userService.UpdateFirstUser(username, password)
	if err != nil {
		fmt.Println("set username and password failed:", err)
	} else {
		fmt.Println("set username and password success")
	}
}

func updatePort(port int) {
	err := database.InitDB(config.GetDBPath())
	if err != nil {
		fmt.Println(err)
		return
	}
	defer database.CloseDB()

	settingService := service.SettingService{}
	allSetting, err := settingService.GetAllSetting()
	if err != nil {
		fmt.Println("get settings failed:", err)
		return
	}
	allSetting.WebPort = port
	if err := allSetting.CheckValid(); err != nil {
		fmt.Println("invalid port:", err)
		return
	}

	err = settingService.SetPort(port)
	if err != nil {
		fmt.Println("set port failed:", err)
	} else {
		fmt.Println("set port success")
	}
}

func main() {
	_ = godotenv.Load()

	var (
		showFlag  bool
		resetFlag bool
		username  string
		password  string
		port      int
	)

	rootCmd := &cobra.Command{
		Use:   "lead-ui",
		Short: "lead-ui is a web panel for tracking sales leads",
		Run: func(cmd *cobra.Command, args []string) {
			runWebServer()
		},
	}

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run the database migration and seed, then exit",
		Run: func(cmd *cobra.Command, args []string) {
			migrateDB()
		},
	}

	settingCmd := &cobra.Command{
		Use:   "setting",
		Short: "Inspect or modify panel settings",
		Run: func(cmd *cobra.Command, args []string) {
			if resetFlag {
				resetSetting()
			}
			if username != "" || password != "" {
				updateUser(username, password)
			}
			if port > 0 {
				updatePort(port)
			}
			if showFlag {
				showSetting()
			}
		},
	}
	settingCmd.Flags().BoolVar(&showFlag, "show", false, "show current settings")
	settingCmd.Flags().BoolVar(&resetFlag, "reset", false, "reset settings to defaults")
	settingCmd.Flags().StringVar(&username, "username", "", "set login username")
	settingCmd.Flags().StringVar(&password, "password", "", "set login password")
	settingCmd.Flags().IntVar(&port, "port", 0, "set web port")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(config.GetVersion())
		},
	}

	rootCmd.AddCommand(migrateCmd, settingCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

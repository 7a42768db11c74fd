package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"DentalClinic/Controllers"
	"DentalClinic/CronJobs"
	"DentalClinic/Models"
	"DentalClinic/Routes"
	"DentalClinic/Store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	Models.ConnectDataBase()
	records := Store.NewStore(Models.DB, log.Default())
	Controllers.UseStore(records)

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"}, // Local frontend only
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
	}))
	Routes.ConfigRoutes(router)

	refresher := CronJobs.NewRefreshWorker(records)
	scheduler := refresher.StartRefreshCron()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = "127.0.0.1:3005"
	}
	go func() {
		if err := router.Run(addr); err != nil {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	scheduler.Stop()
	log.Println("Shutting down")
}

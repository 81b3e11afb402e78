package app

import (
	"fmt"
	"os"

	"estudio-luma-me/app/controller"
	"estudio-luma-me/app/router"
	"estudio-luma-me/db"
	"estudio-luma-me/repository"
	"estudio-luma-me/service"
)

// Initialize initializes the application
func Initialize() error {
	// Initialize database connection
	if err := db.InitDB(); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	// Get storage credentials from environment variables
	credentialsPath := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
	if credentialsPath == "" {
		return fmt.Errorf("GOOGLE_APPLICATION_CREDENTIALS environment variable is not set")
	}
	folderID := os.Getenv("DRIVE_FOLDER_ID")
	if folderID == "" {
		return fmt.Errorf("DRIVE_FOLDER_ID environment variable is not set")
	}

	// Initialize storage service
	storageService, err := service.NewStorageService(credentialsPath, folderID)
	if err != nil {
		return err
	}

	// Initialize repositories
	projectRepo := repository.NewProjectRepository()
	logoRepo := repository.NewLogoRepository()
	siteRepo := repository.NewSiteRepository()
	authRepo := repository.NewAuthRepository()

	// Initialize services
	catalogCache := service.NewCatalogCache(projectRepo, logoRepo, service.DefaultCatalogTTL, nil)
	catalogService := service.NewCatalogService(catalogCache, projectRepo, logoRepo, nil)
	authService := service.NewAuthService(authRepo, nil)
	reencodeService := service.NewReencodeService(storageService)
	exportService := service.NewExportService(catalogService)

	// Create controllers
	controllers := &router.Controllers{
		Catalog: controller.NewCatalogController(catalogService),
		Project: controller.NewProjectController(projectRepo, catalogService),
		Logo:    controller.NewLogoController(logoRepo, catalogService),
		Site:    controller.NewSiteController(siteRepo),
		Auth:    controller.NewAuthController(authService),
		Upload:  controller.NewUploadController(storageService, reencodeService, exportService),
	}

	// Setup routes using standard http router
	router.SetupRoutes(controllers, authService)

	return nil
}

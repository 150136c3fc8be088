package main

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"time"
)

func main() {
	fmt.Println("Запуск Mesto...")

	clientName := "mesto"
	if runtime.GOOS == "windows" {
		clientName = "mesto.exe"
	}
	// сервер на фоне, конфиг по умолчанию ./configs/server.yaml
	server := exec.Command("go", "run", "./cmd/server")
	server.Stdout = os.Stdout
	server.Stderr = os.Stderr

	if err := server.Start(); err != nil {
		fmt.Printf("Ошибка запуска сервера: %v\n", err)
		return
	}

	time.Sleep(3 * time.Second)
	if _, err := os.Stat(clientName); os.IsNotExist(err) {
		fmt.Println("Сборка клиента...")
		build := exec.Command("go", "build", "-o", clientName, "./cmd/mesto")
		build.Stdout = os.Stdout
		build.Stderr = os.Stderr
		if err := build.Run(); err != nil {
			fmt.Printf("Ошибка сборки клиента: %v\n", err)
			_ = server.Process.Kill()
			return
		}
		if runtime.GOOS != "windows" {
			_ = os.Chmod(clientName, 0o755)
		}
	}

	fmt.Println("Сервер запущен на http://localhost:3000")
	if runtime.GOOS == "windows" {
		fmt.Println("Данный терминал не закрывай. Открой новый и запускай: .\\mesto.exe signup --email you@example.com")
	} else {
		fmt.Println("Данный терминал не закрывай. Открой новый и запускай: ./mesto signup --email you@example.com")
	}

	_ = server.Wait()
}

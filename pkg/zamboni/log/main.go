package log

import (
	"fmt"
	"time"
)

func INFO(a ...any) {
	fmt.Printf("%s [INFO] ", time.Now().Format(time.RFC3339))
	fmt.Println(a...)
}

func WARN(a ...any) {
	fmt.Printf("%s [WARN] ", time.Now().Format(time.RFC3339))
	fmt.Println(a...)
}

func ERR(a ...any) {
	fmt.Printf("%s [ERR] ", time.Now().Format(time.RFC3339))
	fmt.Println(a...)
}

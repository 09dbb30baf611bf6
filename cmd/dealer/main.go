package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"

	"github.com/palemoky/contract-bridge/deal"
	"github.com/palemoky/contract-bridge/internal/config"
	"github.com/palemoky/contract-bridge/internal/logger"
	"github.com/palemoky/contract-bridge/internal/render"
)

func main() {
	configPath := flag.String("config", "configs/dealer.yaml", "配置文件路径")
	boards := flag.Int("n", 0, "生成的副数，覆盖配置文件")
	seed := flag.Uint64("seed", 0, "随机种子，覆盖配置文件")
	format := flag.String("format", "", "输出格式 diagram/json，覆盖配置文件")
	flag.Parse()

	// 加载配置
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("加载配置文件失败，使用默认配置: %v", err)
		cfg = config.Default()
	}
	if *boards > 0 {
		cfg.Dealer.Boards = *boards
	}
	if *seed > 0 {
		cfg.Dealer.Seed = *seed
	}
	if *format != "" {
		cfg.Dealer.Format = *format
	}

	if err := logger.Init(""); err != nil {
		log.Fatalf("初始化日志失败: %v", err)
	}
	defer logger.Close()

	var rng *rand.Rand
	if cfg.Dealer.Seed > 0 {
		rng = rand.New(rand.NewPCG(cfg.Dealer.Seed, cfg.Dealer.Seed))
	}

	logger.LogInfo("开始发牌: %d 副, 格式 %s", cfg.Dealer.Boards, cfg.Dealer.Format)
	for number := 1; number <= cfg.Dealer.Boards; number++ {
		deck := deal.NewDeck()
		if rng != nil {
			deck.ShuffleWith(rng)
		} else {
			deck.Shuffle()
		}

		board, err := deal.NewBoard(number, deck)
		if err != nil {
			log.Fatalf("第 %d 副发牌失败: %v", number, err)
		}

		switch cfg.Dealer.Format {
		case "json":
			data, err := json.Marshal(board)
			if err != nil {
				log.Fatalf("第 %d 副编码失败: %v", number, err)
			}
			fmt.Println(string(data))
		case "diagram":
			fmt.Println(render.Diagram(board))
			fmt.Println()
		default:
			log.Fatalf("无法识别的输出格式: %s", cfg.Dealer.Format)
		}
	}
}

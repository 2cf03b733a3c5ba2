package bench

import "github.com/IlikeChooros/go-uct/pkg/mcts"

// Arena callbacks, may be called from many games at once
type ListenerLike[T mcts.MoveLike] interface {
	OnGameStart(info GameInfo[T])
	OnMoveMade(info GameInfo[T])
	OnFinishedGame(info GameInfo[T])
}

type DefaultListener[T mcts.MoveLike] struct{}

func (DefaultListener[T]) OnGameStart(GameInfo[T]) {}

func (DefaultListener[T]) OnMoveMade(GameInfo[T]) {}

func (DefaultListener[T]) OnFinishedGame(GameInfo[T]) {}

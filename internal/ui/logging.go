package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

type logMsg string

type teaLogWriter struct {
	program  *tea.Program
	doneChan chan struct{}
	logChan  chan logMsg
}

func newTeaLogWriter() *teaLogWriter {
	return &teaLogWriter{
		doneChan: make(chan struct{}),
		logChan:  make(chan logMsg, 1000),
	}
}

func (wr *teaLogWriter) SetProgram(program *tea.Program) {
	wr.program = program
}

func (wr *teaLogWriter) Start() {
	go wr.processLogs()
}

func (wr *teaLogWriter) Stop() {
	close(wr.doneChan)
}

func (wr *teaLogWriter) processLogs() {
	for {
		select {
		case <-wr.doneChan:
			return
		case msg := <-wr.logChan:
			wr.program.Send(msg)
		}
	}
}

func (wr *teaLogWriter) Write(p []byte) (int, error) {
	select {
	case <-wr.doneChan:
	case wr.logChan <- logMsg(string(p)):
	}

	return len(p), nil
}

package ui

import "math/rand"

var quotes = []string{
	"Talk is cheap. Show me the code. - Linus Torvalds",
	"Given enough eyeballs, all bugs are shallow. - Eric S. Raymond",
	"Software is like sex: it's better when it's free. - Linus Torvalds",
	"The Linux philosophy is 'Laugh in the face of danger'. Oops. Wrong One. 'Do it yourself'. Yes, that's it. - Linus Torvalds",
	"Intelligence is the ability to avoid doing work, yet getting the work done. - Linus Torvalds",
	"A computer is like air conditioning: it becomes useless when you open Windows. - Linus Torvalds",
	"Microsoft isn't evil, they just make really crappy operating systems. - Linus Torvalds",
	"If you think your users are idiots, only idiots will use it. - Linus Torvalds",
	"I'm doing a (free) operating system (just a hobby, won't be big and professional like gnu) - Linus Torvalds",
	"The most important thing in Open Source is that people are having fun and feeling like they're part of a community. - Mark Shuttleworth",
}

func randomQuote() string {
	return quotes[rand.Intn(len(quotes))]
}

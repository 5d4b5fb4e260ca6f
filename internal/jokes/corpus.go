package jokes

var corpusLanguages = []string{"en", "de", "es"}

var builtinCorpus = map[string]map[string][]string{
	"en": {
		CategoryNeutral: {
			"Why do programmers prefer dark mode? Because light attracts bugs.",
			"There are 10 types of people: those who understand binary and those who don't.",
			"A SQL query walks into a bar, walks up to two tables and asks, 'Can I join you?'",
			"How many programmers does it take to change a light bulb? None, that's a hardware problem.",
			"I would tell you a UDP joke, but you might not get it.",
			"Debugging: removing the needles from the haystack.",
			"Why did the developer go broke? Because he used up all his cache.",
			"Ubuntu users are apt to get this joke.",
			"Knock knock. Race condition. Who's there?",
			"Programmer's wife: buy a loaf of bread, and if they have eggs, buy a dozen. He came back with twelve loaves.",
			"Old C programmers don't die, they're just cast into void.",
			"Why did the functions stop calling each other? Because they had constant arguments.",
		},
		CategoryChuck: {
			"Chuck Norris writes code that optimizes itself.",
			"Chuck Norris can divide by zero.",
			"When Chuck Norris throws exceptions, it's across the room.",
			"Chuck Norris doesn't need a debugger, he just stares down the bug until the code confesses.",
			"Chuck Norris's keyboard doesn't have a Ctrl key because nothing controls Chuck Norris.",
			"All arrays Chuck Norris declares are of infinite size, because Chuck Norris knows no bounds.",
			"Chuck Norris can unit test an entire application with a single assert.",
			"Chuck Norris compresses his files by doing a flying round house kick to the hard drive.",
			"Chuck Norris's code never has memory leaks. Memory is too scared to leave.",
			"Chuck Norris can write infinite recursion functions and have them return.",
		},
	},
	"de": {
		CategoryNeutral: {
			"Warum verwechseln Programmierer Halloween mit Weihnachten? Weil Oct 31 gleich Dec 25 ist.",
			"Wie viele Programmierer braucht man, um eine Glühbirne zu wechseln? Keinen, das ist ein Hardwareproblem.",
			"Es gibt 10 Arten von Menschen: Die, die Binär verstehen, und die, die es nicht tun.",
			"Ein Informatiker schiebt einen Kinderwagen durch den Park. Kommt ein Ehepaar: Junge oder Mädchen? Richtig!",
		},
	},
	"es": {
		CategoryNeutral: {
			"¿Por qué los programadores confunden Halloween con Navidad? Porque Oct 31 es igual a Dec 25.",
			"Hay 10 tipos de personas: las que entienden binario y las que no.",
			"¿Cuántos programadores hacen falta para cambiar una bombilla? Ninguno, es un problema de hardware.",
		},
	},
}

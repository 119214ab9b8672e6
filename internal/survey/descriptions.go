package survey

import "github.com/violetta-bot/violetta/internal/models"

// AccentuationDescriptions maps scale number to its fixed descriptive
// paragraph, rendered when the scale dominates.
var AccentuationDescriptions = map[int]string{
	1:  `Гипертимный тип. Людей этого типа отличает большая подвижность, общительность, болтливость, выраженность жестов, мимики, пантомимики, чрезмерная самостоятельность, склонность к озорству, недостаток чувства дистанции в отношениях с другими. Часто спонтанно отклоняются от первоначальной темы в разговоре. Везде вносят много шума, любят компании сверстников, стремятся ими командовать. Они почти всегда имеют очень хорошее настроение, хорошее самочувствие, высокий жизненный тонус, нередко цветущий вид, хороший аппетит, здоровый сон, склонность к чревоугодию и иным радостям жизни. Это люди с повышенной самооценкой, веселые, легкомысленные, поверхностные и вместе с тем деловитые, изобретательные, блестящие собеседники; люди, умеющие развлекать других, энергичные, деятельные, инициативные.`,
	2:  `Возбудимый тип. Недостаточная управляемость, ослабление контроля над влечениями и побуждениями сочетаются у людей такого типа с властью физиологических влечений. Ему характерна повышенная импульсивность, инстинктивность, грубость, занудство, угрюмость, гневливость, склонность к хамству и брани, к трениям и конфликтам, в которых сам и является активной, провоцирующей стороной. Раздражителен, вспыльчив, часто меняет место работы, неуживчив в коллективе. Отмечается низкая контактность в общении, замедленность вербальных и невербальных реакций, тяжеловесность поступков. Для него никакой труд не становится привлекательным, работает лишь по мере необходимости, проявляет такое же нежелание учиться. Равнодушен к будущему, целиком живет настоящим, желая извлечь из него массу развлечений. Повышенная импульсивность или возникающая реакция возбуждения гасятся с трудом и могут быть опасны для окружающих. Он может быть властным, выбирая для общения наиболее слабых.`,
	3:  `Эмотивный тип. Этот тип родствен экзальтированному, но проявления его не столь бурны. Для них характерны эмоциональность, чувствительность, тревожность, болтливость, боязливость, глубокие реакции в области тонких чувств. Наиболее сильно выраженная их черта — гуманность, сопереживание другим людям или животным, отзывчивость, мягкосердечность, они радуются чужим успехам. Впечатлительны, слезливы, любые жизненные события воспринимают серьезнее, чем другие люди. Подростки остро реагируют на сцены из фильмов, где кому-либо угрожает опасность, сцена насилия может вызвать у них сильное потрясение, которое долго не забудется и может нарушить сон. Редко вступают в конфликты, обиды носят в себе, не выплескивая их наружу. Им свойственно обостренное чувство долга, исполнительность. Бережно относятся к природе, любят выращивать растения, ухаживать за животными,`,
	4:  `Педантичный тип. Характеризуется ригидностью, инертностью психических процессов, тяжелостью на подъем, долгим переживанием травмирующих событий. В конфликты вступает редко, выступая скорее пассивной, чем активной стороной. В то же время очень сильно реагирует на любое проявление нарушения порядка. На службе ведет себя как бюрократ, предъявляя окружающим много формальных требований. Пунктуален, аккуратен, особое внимание уделяет чистоте и порядку, скрупулезен, добросовестен, склонен жестко следовать плану, в выполнении действий нетороплив, усидчив, ориентирован на высокое качество работы и особую аккуратность, склонен к частым самопроверкам, сомнениям в правильности выполненной работы, брюзжанию, формализму. С охотой уступает лидерство другим людям.`,
	5:  `Тревожный тип. Людям данного типа свойственны низкая контактность, минорное настроение, робость, пугливость, неуверенность в себе. Дети тревожного типа часто боятся темноты, животных, страшатся оставаться одни. Они сторонятся шумных и бойких сверстников, не любят чрезмерно шумных игр, испытывают чувство робости и застенчивости, тяжело переживают контрольные, экзамены, проверки. Часто стесняются отвечать перед классом. Охотно подчиняются опеке старших, нотации взрослых могут вызвать у них угрызения совести, чувство вины, слезы, отчаяние. У них рано формируется чувство долга, ответственности, высокие моральные и этические требования. Чувство собственной неполноценности стараются замаскировать в самоутверждении через те виды деятельности, где они могут в большей мере раскрыть свои способности. `,
	6:  `Циклотимный тип. Характеризуется сменой гипертимных и дистимных состояний. Им свойственны частые периодические смены настроения, а также зависимость от внешних событий. Радостные события вызывают у них картины гипертимии: жажда деятельности, повышенная говорливость, скачка идей; печальные — подавленность, замедленность реакций и мышления, так же часто меняется их манера общения с окружающими людьми. В подростковом возрасте можно обнаружить два варианта циклотимической акцентуации: типичные и лабильные циклоиды. Типичные циклоиды в детстве обычно производят впечатление гипертимных, но затем проявляется вялость, упадок сил, то что раньше давал ось легко, теперь требует непомерных усилий. Прежде шумные и бойкие, они становятся вялыми домоседами, наблюдается падение аппетита, бессонница или сонливость. На замечания реагируют раздражением, даже грубостью и гневом, в глубине души, однако, впадая при этом в уныние, глубокую депрессию, не исключены суицидальные попытки.`,
	7:  `Демонстративный тип. Характеризуется повышенной способностью к вытеснению, демонстративностью поведения, живостью, подвижностью, легкостью в установлении контактов. Склонен к фантазерству, лживости и притворству, направленным на приукрашивание своей персоны, к авантюризму, артистизму, позерству. Им движет стремление к лидерству, потребность в признании, жажда постоянного внимания к своей персоне, жажда власти, похвалы; перспектива быть незамеченным отягощает его. Он демонстрирует высокую приспосабливаемость к людям, эмоциональную лабильность (легкую смену настроений) при отсутствии действительно глубоких чувств, склонность к интригам (при внешней мягкости манеры общения). Отмечается беспредельный эгоцентризм, жажда восхищения, сочувствия, почитания, удивления. Обычно похвала других в его присутствии вызывает у него особо неприятные ощущения, он этого не выносит. Стремление компании обычно связано с потребностью ощутить себя лидером, занять исключительное положение.`,
	8:  `Застревающий тип. Его характеризует умеренная общительность, занудство, склонность к нравоучениям, неразговорчивость. Часто страдает от мнимой несправедливости по отношению к нему. В связи с этим проявляет настороженность и недоверчивость по отношению к людям, чувствителен к обидам и огорчениям, уязвим, подозрителен, отличается мстительностью, долго переживает происшедшее, не способен легко отходить от обид. Для него характерна заносчивость, часто выступает инициатором конфликтов. Самонадеянность, жесткость установок и взглядов, сильно развитое честолюбие часто приводят к настойчивому утверждению своих интересов, которые он отстаивает с особой энергичностью. Стремится добиться высоких показателей в любом деле, за которое берется, и проявляет большое упорство в достижении своих целей. Основной чертой является склонность к аффектам (правдолюбие, обидчивость, ревность, подозрительность), инертность в проявлении аффектов, в мышлении, в моторике.`,
	9:  `Дистимический тип. Люди этого типа отличаются серьезностью, даже подавленностью настроения, медлительностью слабостью волевых усилий. Для них характерны пессимистическое отношение к будущему, заниженная самооценка, а также низкая контактность, немногословность в беседе, даже молчаливость. Такие люди являются домоседами, индивидуалистами; общества, шумной компании обычно избегают, ведут замкнутый образ жизни. Часто угрюмы, заторможенны, склонны фиксироваться на теневых сторонах жизни. Они добросовестны, ценят тех, кто с ними дружит, и готовы им подчиниться, располагают обостренным чувством справедливости, а также замедленностью мышления.`,
	10: `Экзальтированный тип. Яркая черта этого типа — способность восторгаться, восхищаться, а также улыбчивостъ, ощущение счастья, радости, наслаждения. Эти чувства у них могут часто возникать по причине, которая у других не вызывает большого подъема, они легко приходят в восторг от радостных событий и в полное отчаяние — от печальных. Им свойственна высокая контактность, словоохотливость, влюбчивость. Такие люди часто спорят, но не доводят дела до открытых конфликтов. В конфликтных ситуациях они бывают как активной, так и пассивной стороной. Они привязаны к друзьям и близким, альтруистичны, имеют чувство сострадания, хороший вкус, проявляют яркость и искренность чувств. Могут быть паникерами, подвержены сиюминутным настроениям, порывисты, легко переходят от состояния восторга к состоянию печали, обладают лабильностью психики.`,
}

// ModalityDescription is a titled descriptive block for a dominant channel.
type ModalityDescription struct {
	Title       string
	Description string
}

// ModalityDescriptions maps each perceptual channel to its rendered block.
var ModalityDescriptions = map[models.Modality]ModalityDescription{
	models.ModalityVisual: {
		Title: "👁 ВИЗУАЛ",
		Description: `Вы относитесь к визуальному типу восприятия.

Часто употребляются слова и фразы, которые связаны со зрением, с образами и
воображением. Например: “не видел этого”, “заметил
прекрасную особенность”. Рисунки, образные описания, фотографии значат для данного типа
больше, чем слова. Принадлежащие к этому типу люди моментально схватывают то, что
можно увидеть: цвета, гармонию и беспорядок.

Способ получения информации:
Посредством зрения – благодаря использованию наглядных пособий или непосредственно
наблюдая за тем, как выполняются соответствующие действия Восприятие окружающего
мира Восприимчивы к видимой стороне окружающего мира; испытывают жгучую
потребность в том, чтобы мир вокруг них выглядел красиво; легко отвлекаются и впадают в
беспокойство при виде беспорядка.
Речь:
Описывают видимые детали обстановки – цвет, форму, размер и внешний облик вещей
Движения глаз:
Когда о чем-нибудь размышляют, обычно смотрят в потолок; когда слушают, испытывают
потребность смотреть в глаза говорящему и хотят, чтобы те, кто их слушают, также смотрели
им в глаза.
Память.:
Хорошо запоминают зримые детали обстановки, а также тексты и учебные пособия,
представленные в печатном или графическом виде.`,
	},
	models.ModalityAudial: {
		Title: "👂 АУДИАЛ",
		Description: `Вы относитесь к аудиальному типу восприятия.

“Не понимаю что мне говоришь”, “это известие для меня…”, “не выношу таких
громких мелодий” – вот характерные высказывания для людей этого типа; огромное значение
для них имеет все, что акустично: звуки, слова, музыка, шумовые эффекты.

Способ получения информации:
Посредством слуха – в процессе разговора, чтения вслух, спора или обмена мнениями со
своими собеседниками.
Восприятие окружающего мира.
Испытывают потребность в непрерывной слуховой стимуляции, а когда вокруг тихо,
начинают издавать различные звуки – мурлычут себе под нос, свистят или сами с собой
разговаривают, но только не тогда, когда они заняты учебой, потому что в эти минуты им
необходима тишина; в противном случае им приходится отключаться от раздражающего
шума, который исходит от других людей.
Речь:
Описывают звуки и голоса, музыку, звуковые эффекты и шумы, которые можно услышать в
окружающей их обстановке, а также пересказывают то, что говорят другие люди.
Движения глаз: Обычно смотрят то влево, то вправо и лишь изредка и ненадолго
заглядывают в глаза говорящему.
Память:
Хорошо запоминают разговоры, музыку и звуки.`,
	},
	models.ModalityKinesthetic: {
		Title: "✋ КИНЕСТЕТИК",
		Description: `Вы относитесь к кинестетическому типу восприятия.

Тут чаще в ходу другие слова и определения, например: “не могу этого понять”,
“атмосфера в квартире невыносимая”. Чувства и впечатления людей этого типа касаются,
главным образом, того, что относится к прикосновению, интуиции. В разговоре их
интересуют внутренние переживания.

Способ получения информации:
Посредством активных движений скелетных мышц – участвуя в подвижных играх и
занятиях, экспериментируя, исследуя окружающий мир, при условии, что тело постоянно
находится в движении.
Восприятие окружающего мира:
Привыкли к тому, что вокруг них кипит деятельность; им необходим простор для движения;
их внимание всегда приковано к движущимся объектам; зачастую их отвлекает и раздражает,
когда другие люди не могут усидеть на месте, однако им самим необходимо постоянно
двигаться на что обращают внимание при общении с людьми на то, как другой себя ведет;
что он делает и чем занимается.
Речь:
Широко применяют слова, обозначающие движения и действия; говорят в основном о делах,
победах и достижениях; часто используют в разговоре свое тело, жесты.
Движения глаз:
Им удобнее всего слушать и размышлять, когда их глаза опущены вниз и в сторону; они
практически не смотрят в глаза собеседнику, поскольку именно такое положение глаз
позволяет им учиться и одновременно действовать
Память:
Хорошо запоминают свои и чужие поступки, движения и жесты.`,
	},
}
